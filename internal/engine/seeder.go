package engine

import (
	"fmt"
	"sort"

	"github.com/teamsmith/teamsmith/internal/errors"
)

// Seed performs a serpentine (snake) draft: players sorted by skill
// descending are dealt to teams in forward order, then reverse order,
// alternately (1,2,...,k,k,k-1,...,1,1,2,...). The result keeps
// cumulative skill roughly balanced before any optimization runs.
//
// Ties in skill keep their input order, so seeding is deterministic for
// a given input. teamCount < 1 returns ErrInvalidTeamCount; an empty
// player list is valid and yields teamCount empty teams. teamCount may
// exceed the player count, in which case the surplus teams stay empty.
func Seed(players []Player, teamCount int) (*Partition, error) {
	if teamCount < 1 {
		return nil, fmt.Errorf("seed: team count %d: %w", teamCount, errors.ErrInvalidTeamCount)
	}

	teams := make([]*Team, teamCount)
	for i := range teams {
		teams[i] = &Team{Label: fmt.Sprintf("Team %d", i+1)}
	}

	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Skill > sorted[j].Skill
	})

	idx, dir := 0, 1
	for _, p := range sorted {
		teams[idx].add(p)
		idx += dir
		if idx >= teamCount {
			// Reached the far end: reverse and deal to the last team again.
			dir = -1
			idx = teamCount - 1
		} else if idx < 0 {
			dir = 1
			idx = 0
		}
	}

	return &Partition{Teams: teams}, nil
}
