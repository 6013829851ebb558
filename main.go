package main

import (
	"fmt"
	"os"

	"tsnake/app"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "tsnake",
	Short:         "tsnake is a game of snake for your terminal",
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("stdin/ stdout should be a terminal")
		}

		a, err := app.New()
		if err != nil {
			return err
		}
		return a.Run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
