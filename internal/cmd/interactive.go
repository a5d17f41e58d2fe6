package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamsmith/teamsmith/internal/config"
	"github.com/teamsmith/teamsmith/internal/errors"
	"github.com/teamsmith/teamsmith/internal/ratings"
	"github.com/teamsmith/teamsmith/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Enter a roster interactively and balance it on demand",
	RunE:    runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyColor(cfg)
	if cfg.Ratings.Path == "" {
		return errors.NewValidationError("no ratings file configured").
			WithField("ratings.path")
	}

	src, err := ratings.Load(cfg.Ratings.Path, cfg.Ratings.DelimiterRune())
	if err != nil {
		return err
	}

	policy, err := ratings.ParsePolicy(cfg.Ratings.UnratedPolicy)
	if err != nil {
		return err
	}

	return tui.Run(src, cfg, policy)
}
