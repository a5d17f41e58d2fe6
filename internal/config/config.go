package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete teamsmith configuration
type Config struct {
	Balance BalanceConfig `mapstructure:"balance"`
	Ratings RatingsConfig `mapstructure:"ratings"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BalanceConfig controls the balancing engine
type BalanceConfig struct {
	// TeamCount is the number of teams to split the roster into (default: 2)
	TeamCount int `mapstructure:"team_count"`
	// MaxTrials is the optimization trial budget (default: 20000, 0 = seeding only)
	MaxTrials int `mapstructure:"max_trials"`
	// Seed seeds the random source for reproducible runs (0 = time-based)
	Seed int64 `mapstructure:"seed"`
	// TeamNames overrides the default "Team N" labels
	TeamNames []string `mapstructure:"team_names"`
}

// RatingsConfig controls where ratings come from and how unrated players are handled
type RatingsConfig struct {
	// Path is the ratings file location
	Path string `mapstructure:"path"`
	// Delimiter is the field separator in the ratings file (default: ",")
	Delimiter string `mapstructure:"delimiter"`
	// DefaultSkill is the skill assigned to unrated players under the "default" policy
	DefaultSkill float64 `mapstructure:"default_skill"`
	// UnratedPolicy decides what happens to players with no rating
	// Options: "report" (exclude and list them), "default" (include at default_skill)
	UnratedPolicy string `mapstructure:"unrated_policy"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	// Format is the output format: "table" or "json" (default: "table")
	Format string `mapstructure:"format"`
	// Color enables styled terminal output (default: true)
	Color bool `mapstructure:"color"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log destination; empty logs to stderr
	File string `mapstructure:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Balance: BalanceConfig{
			TeamCount: 2,
			MaxTrials: 20000,
			Seed:      0, // 0 means time-seeded, non-reproducible
			TeamNames: []string{},
		},
		Ratings: RatingsConfig{
			Path:          "",
			Delimiter:     ",",
			DefaultSkill:  25.0, // TrueSkill prior mean
			UnratedPolicy: "report",
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("balance.team_count", defaults.Balance.TeamCount)
	viper.SetDefault("balance.max_trials", defaults.Balance.MaxTrials)
	viper.SetDefault("balance.seed", defaults.Balance.Seed)
	viper.SetDefault("balance.team_names", defaults.Balance.TeamNames)

	viper.SetDefault("ratings.path", defaults.Ratings.Path)
	viper.SetDefault("ratings.delimiter", defaults.Ratings.Delimiter)
	viper.SetDefault("ratings.default_skill", defaults.Ratings.DefaultSkill)
	viper.SetDefault("ratings.unrated_policy", defaults.Ratings.UnratedPolicy)

	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.color", defaults.Output.Color)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// DelimiterRune returns the ratings delimiter as a rune, defaulting to
// a comma when unset.
func (r *RatingsConfig) DelimiterRune() rune {
	if r.Delimiter == "" {
		return ','
	}
	return []rune(r.Delimiter)[0]
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teamsmith")
	}
	// Fall back to ~/.config/teamsmith
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teamsmith"
	}
	return filepath.Join(home, ".config", "teamsmith")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
