package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/config"
	"github.com/abhisek/studyplan/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "Personal study planner",
	Long:  "studyplan turns topics, a deadline, and weekly free time into a study schedule, and tracks the sessions you complete.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYPLAN_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: config.yaml in the user config dir)")
	rootCmd.Flags().String("plan", "", "Generate a schedule from a JSON plan file and open it in the planner")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from config, then STUDYPLAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}
