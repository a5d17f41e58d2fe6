package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/teamsmith/teamsmith/internal/config"
	"github.com/teamsmith/teamsmith/internal/errors"
	"github.com/teamsmith/teamsmith/internal/logging"
	"github.com/teamsmith/teamsmith/internal/roster"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-balance whenever the ratings or roster file changes",
	Long: `Watch monitors the ratings file and the roster file and re-runs the
balance every time either one is written, printing fresh teams. Useful
while a ratings export or a signup sheet is still being edited.

Requires --roster; positional names cannot be watched.`,
	RunE: runWatch,
}

var watchRoster string

func init() {
	watchCmd.Flags().StringVarP(&watchRoster, "roster", "f", "", "roster file to watch (required)")
	_ = watchCmd.MarkFlagRequired("roster")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyColor(cfg)
	if cfg.Ratings.Path == "" {
		return errors.NewValidationError("no ratings file configured").
			WithField("ratings.path")
	}

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	for _, path := range []string{cfg.Ratings.Path, watchRoster} {
		if err := watcher.Add(path); err != nil {
			return errors.Wrapf(err, "watching %s", path)
		}
	}

	// First pass before any change arrives.
	if err := watchPass(cmd, cfg, logger); err != nil {
		if !errors.IsUserFacing(err) {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	logger.Info("watching for changes", "ratings", cfg.Ratings.Path, "roster", watchRoster)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			if err := watchPass(cmd, cfg, logger); err != nil {
				// Transient states (half-written files) are expected
				// while editors save; report and keep watching.
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		case <-sig:
			logger.Info("shutting down watch")
			return nil
		}
	}
}

func watchPass(cmd *cobra.Command, cfg *config.Config, logger *logging.Logger) error {
	names, err := roster.ReadFile(watchRoster)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return errors.ErrEmptyRoster
	}

	out, err := balanceOnce(cfg, logger, names, cfg.Output.Format == "json")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
