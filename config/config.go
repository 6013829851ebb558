package config

import (
	"os"
	"strconv"
)

// Tuning knobs. These aren't user facing but useful for adjusting runtime
// behavior without a rebuild. Game rules stay hardcoded.
var (
	LogFile   = getEnv("SNAKE_LOG_FILE", "tsnake.log")
	FrameRate = getEnvInt("SNAKE_FRAME_RATE", 60)
)

func getEnv(varName, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
