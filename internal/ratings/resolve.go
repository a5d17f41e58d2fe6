package ratings

import (
	"github.com/teamsmith/teamsmith/internal/engine"
	"github.com/teamsmith/teamsmith/internal/errors"
)

// Policy decides what happens to roster players with no ratings entry.
type Policy int

const (
	// PolicyReport excludes unrated players from the balanced teams and
	// lists them separately in the resolution.
	PolicyReport Policy = iota
	// PolicyDefault includes unrated players at a configured default
	// skill value.
	PolicyDefault
)

// String returns the config-file spelling of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyReport:
		return "report"
	case PolicyDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a config-file spelling into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "report":
		return PolicyReport, nil
	case "default":
		return PolicyDefault, nil
	default:
		return PolicyReport, errors.Wrapf(errors.ErrUnknownPolicy, "policy %q", s)
	}
}

// Resolution is the outcome of matching a roster against a ratings
// source: the players to balance plus any names left unrated (only
// populated under PolicyReport).
type Resolution struct {
	Players []engine.Player
	Unrated []string
}

// Resolve converts roster names into engine players using the ratings
// source. Under PolicyDefault an unrated name becomes a player with
// defaultSkill; under PolicyReport it is set aside in Unrated. Rated
// players keep the canonical spelling from the ratings file.
func Resolve(names []string, src *Source, policy Policy, defaultSkill float64) Resolution {
	var res Resolution
	for _, name := range names {
		rec, ok := src.Lookup(name)
		if ok {
			res.Players = append(res.Players, engine.Player{Name: rec.Name, Skill: rec.Skill})
			continue
		}
		switch policy {
		case PolicyDefault:
			res.Players = append(res.Players, engine.Player{Name: name, Skill: defaultSkill})
		default:
			res.Unrated = append(res.Unrated, name)
		}
	}
	return res
}
