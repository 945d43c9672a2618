package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brightpath/tutor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tutord",
	Short: "Adaptive mastery and planning engine",
	Long:  "tutord serves the adaptive tutoring core: BKT mastery tracking, the mastery gate, session orchestration, and learning-plan generation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides defaults)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTOR_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers the optional config file, environment, and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Database.Path = db
	}
	return cfg, nil
}
