package game

// Status is the lifecycle of one game screen instance.
type Status uint8

const (
	Running Status = iota
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}
