package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teamsmith/teamsmith/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Display the effective configuration after merging defaults, the
config file, environment variables and flags.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if file := viper.ConfigFileUsed(); file != "" {
		fmt.Fprintf(out, "# config file: %s\n", file)
	} else {
		fmt.Fprintf(out, "# no config file found (looked in %s)\n", config.ConfigDir())
	}

	fmt.Fprintln(out, "balance:")
	fmt.Fprintf(out, "  team_count: %d\n", cfg.Balance.TeamCount)
	fmt.Fprintf(out, "  max_trials: %d\n", cfg.Balance.MaxTrials)
	fmt.Fprintf(out, "  seed: %d\n", cfg.Balance.Seed)
	fmt.Fprintf(out, "  team_names: %v\n", cfg.Balance.TeamNames)
	fmt.Fprintln(out, "ratings:")
	fmt.Fprintf(out, "  path: %q\n", cfg.Ratings.Path)
	fmt.Fprintf(out, "  delimiter: %q\n", cfg.Ratings.Delimiter)
	fmt.Fprintf(out, "  default_skill: %v\n", cfg.Ratings.DefaultSkill)
	fmt.Fprintf(out, "  unrated_policy: %s\n", cfg.Ratings.UnratedPolicy)
	fmt.Fprintln(out, "output:")
	fmt.Fprintf(out, "  format: %s\n", cfg.Output.Format)
	fmt.Fprintf(out, "  color: %v\n", cfg.Output.Color)
	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  file: %q\n", cfg.Logging.File)

	return nil
}
