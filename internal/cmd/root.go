package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teamsmith/teamsmith/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "teamsmith",
	Short: "Split rated players into evenly matched teams",
	Long: `Teamsmith splits a roster of rated players into a fixed number of
teams with near-equal average skill. It seeds teams with a serpentine
draft and then runs a randomized hill-climbing search that swaps
players between teams until the spread of team averages stops
improving.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/teamsmith/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/teamsmith")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TEAMSMITH")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TEAMSMITH_BALANCE_MAX_TRIALS for balance.max_trials
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// applyColor honors the output.color setting by forcing plain ASCII
// rendering when color is disabled.
func applyColor(cfg *config.Config) {
	if !cfg.Output.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
