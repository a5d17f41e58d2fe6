package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "zero team count",
			mutate:    func(c *Config) { c.Balance.TeamCount = 0 },
			wantField: "balance.team_count",
		},
		{
			name:      "negative team count",
			mutate:    func(c *Config) { c.Balance.TeamCount = -3 },
			wantField: "balance.team_count",
		},
		{
			name:      "negative trials",
			mutate:    func(c *Config) { c.Balance.MaxTrials = -1 },
			wantField: "balance.max_trials",
		},
		{
			name:      "absurd trials",
			mutate:    func(c *Config) { c.Balance.MaxTrials = 100_000_000 },
			wantField: "balance.max_trials",
		},
		{
			name:      "multi-character delimiter",
			mutate:    func(c *Config) { c.Ratings.Delimiter = ", " },
			wantField: "ratings.delimiter",
		},
		{
			name:      "unknown policy",
			mutate:    func(c *Config) { c.Ratings.UnratedPolicy = "drop" },
			wantField: "ratings.unrated_policy",
		},
		{
			name:      "unknown format",
			mutate:    func(c *Config) { c.Output.Format = "xml" },
			wantField: "output.format",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Logging.Level = "trace" },
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("Validate() = no errors, want at least one")
			}
			found := false
			for _, e := range errs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q in %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateAllowsZeroTrials(t *testing.T) {
	cfg := Default()
	cfg.Balance.MaxTrials = 0

	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("Validate() = %v, want none (0 trials means seeding only)", errs)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "balance.team_count", Value: 0, Message: "must be at least 1"},
		{Field: "output.format", Value: "xml", Message: "must be one of: table, json"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("message %q missing count header", msg)
	}
	if !strings.Contains(msg, "balance.team_count") || !strings.Contains(msg, "output.format") {
		t.Errorf("message %q missing field names", msg)
	}

	single := ValidationErrors{errs[0]}
	if single.Error() != errs[0].Error() {
		t.Errorf("single error message = %q, want %q", single.Error(), errs[0].Error())
	}
}
