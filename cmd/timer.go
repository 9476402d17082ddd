package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/screen"
	timerscreen "github.com/abhisek/studyplan/internal/screens/timer"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Open the Pomodoro focus timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(d *deps) screen.Screen {
			return timerscreen.New(d.cfg.Timer.Pomodoro(), d.logger)
		})
	},
}
