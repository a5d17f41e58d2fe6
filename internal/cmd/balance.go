package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teamsmith/teamsmith/internal/config"
	"github.com/teamsmith/teamsmith/internal/engine"
	"github.com/teamsmith/teamsmith/internal/errors"
	"github.com/teamsmith/teamsmith/internal/logging"
	"github.com/teamsmith/teamsmith/internal/ratings"
	"github.com/teamsmith/teamsmith/internal/roster"
	"github.com/teamsmith/teamsmith/internal/tui/view"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [player...]",
	Short: "Balance a roster into teams of equal average skill",
	Long: `Balance splits a roster into teams so that every team's average
skill is as close as possible to the others'.

Player names are taken from positional arguments or from a roster file
(--roster, one name per line, '#' comments allowed). Skills come from a
delimited ratings file with 'name', 'rank' and 'true_skill' columns.
Players without a rating are excluded and reported, or included at a
default skill, depending on the unrated policy.`,
	RunE: runBalance,
}

var (
	balanceRoster string // Roster file path
	balanceJSON   bool   // Output as JSON
)

func init() {
	balanceCmd.Flags().StringVarP(&balanceRoster, "roster", "f", "", "roster file (one player name per line)")
	balanceCmd.Flags().BoolVar(&balanceJSON, "json", false, "Output result as JSON")

	balanceCmd.Flags().StringP("ratings", "r", "", "ratings file path")
	balanceCmd.Flags().IntP("teams", "t", 0, "number of teams")
	balanceCmd.Flags().Int("trials", 0, "max optimization trials (0 = seeding only)")
	balanceCmd.Flags().Int64("seed", 0, "random seed for reproducible runs (0 = time-based)")
	balanceCmd.Flags().Float64("default-skill", 0, "skill assigned to unrated players under the 'default' policy")
	balanceCmd.Flags().String("unrated-policy", "", "unrated player policy: report or default")

	_ = viper.BindPFlag("ratings.path", balanceCmd.Flags().Lookup("ratings"))
	_ = viper.BindPFlag("balance.team_count", balanceCmd.Flags().Lookup("teams"))
	_ = viper.BindPFlag("balance.max_trials", balanceCmd.Flags().Lookup("trials"))
	_ = viper.BindPFlag("balance.seed", balanceCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("ratings.default_skill", balanceCmd.Flags().Lookup("default-skill"))
	_ = viper.BindPFlag("ratings.unrated_policy", balanceCmd.Flags().Lookup("unrated-policy"))

	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyColor(cfg)

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	names, err := rosterNames(args)
	if err != nil {
		return err
	}

	out, err := balanceOnce(cfg, logger, names, balanceJSON)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// rosterNames assembles the roster from the --roster file and/or
// positional arguments, de-duplicated case-insensitively.
func rosterNames(args []string) ([]string, error) {
	var names []string
	if balanceRoster != "" {
		fileNames, err := roster.ReadFile(balanceRoster)
		if err != nil {
			return nil, err
		}
		names = fileNames
	}
	names = roster.Dedupe(append(names, args...))
	if len(names) == 0 {
		return nil, errors.ErrEmptyRoster
	}
	return names, nil
}

// balanceOnce runs a full load-resolve-balance-render pass. It is
// shared by the balance and watch commands.
func balanceOnce(cfg *config.Config, logger *logging.Logger, names []string, asJSON bool) (string, error) {
	if cfg.Ratings.Path == "" {
		return "", errors.NewValidationError("no ratings file configured").
			WithField("ratings.path")
	}

	src, err := ratings.Load(cfg.Ratings.Path, cfg.Ratings.DelimiterRune())
	if err != nil {
		return "", err
	}
	logger.Debug("ratings loaded", "path", cfg.Ratings.Path, "players", src.Len())

	policy, err := ratings.ParsePolicy(cfg.Ratings.UnratedPolicy)
	if err != nil {
		return "", err
	}

	res := ratings.Resolve(names, src, policy, cfg.Ratings.DefaultSkill)
	if len(res.Unrated) > 0 {
		logger.Warn("roster has unrated players", "count", len(res.Unrated), "policy", policy.String())
	}

	seed := cfg.Balance.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p, cost, err := engine.Balance(res.Players, cfg.Balance.TeamCount,
		engine.WithMaxTrials(cfg.Balance.MaxTrials),
		engine.WithSource(rand.New(rand.NewSource(seed))),
		engine.WithLabels(cfg.Balance.TeamNames),
	)
	if err != nil {
		return "", err
	}
	logger.Info("roster balanced",
		"players", p.PlayerCount(),
		"teams", len(p.Teams),
		"cost", cost,
		"trials", cfg.Balance.MaxTrials,
	)

	if asJSON || cfg.Output.Format == "json" {
		return renderJSON(p, cost, res.Unrated)
	}
	return view.Render(p, cost, res.Unrated), nil
}

// teamResult is the JSON-serializable form of one balanced team.
type teamResult struct {
	Label        string       `json:"label"`
	Members      []memberJSON `json:"members"`
	TotalSkill   float64      `json:"totalSkill"`
	AverageSkill float64      `json:"averageSkill"`
}

type memberJSON struct {
	Name  string  `json:"name"`
	Skill float64 `json:"skill"`
}

// balanceResult is the JSON-serializable result of a balance run.
type balanceResult struct {
	Teams   []teamResult `json:"teams"`
	Cost    float64      `json:"cost"`
	Unrated []string     `json:"unrated,omitempty"`
}

func renderJSON(p *engine.Partition, cost float64, unrated []string) (string, error) {
	result := balanceResult{Cost: cost, Unrated: unrated}
	for _, t := range p.Teams {
		tr := teamResult{
			Label:        t.Label,
			Members:      make([]memberJSON, 0, len(t.Members)),
			TotalSkill:   t.TotalSkill,
			AverageSkill: t.AverageSkill(),
		}
		for _, m := range t.Members {
			tr.Members = append(tr.Members, memberJSON{Name: m.Name, Skill: m.Skill})
		}
		result.Teams = append(result.Teams, tr)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
