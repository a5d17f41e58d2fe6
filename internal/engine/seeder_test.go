package engine

import (
	"reflect"
	"testing"

	"github.com/teamsmith/teamsmith/internal/errors"
)

func TestSeedSerpentineOrder(t *testing.T) {
	// 5 players into 2 teams must deal to indices 0,1,1,0,0: the first
	// team gets {50,20,10}, the second {40,30}.
	players := []Player{
		{Name: "a", Skill: 50},
		{Name: "b", Skill: 40},
		{Name: "c", Skill: 30},
		{Name: "d", Skill: 20},
		{Name: "e", Skill: 10},
	}

	p, err := Seed(players, 2)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	wantA := []float64{50, 20, 10}
	wantB := []float64{40, 30}
	if got := memberSkills(p.Teams[0]); !reflect.DeepEqual(got, wantA) {
		t.Errorf("team 0 skills = %v, want %v", got, wantA)
	}
	if got := memberSkills(p.Teams[1]); !reflect.DeepEqual(got, wantB) {
		t.Errorf("team 1 skills = %v, want %v", got, wantB)
	}

	if p.Teams[0].TotalSkill != 80 {
		t.Errorf("team 0 TotalSkill = %v, want 80", p.Teams[0].TotalSkill)
	}
	if p.Teams[1].TotalSkill != 70 {
		t.Errorf("team 1 TotalSkill = %v, want 70", p.Teams[1].TotalSkill)
	}
}

func TestSeedCompleteness(t *testing.T) {
	players := []Player{
		{Name: "a", Skill: 3.5},
		{Name: "b", Skill: 1.25},
		{Name: "c", Skill: 7},
		{Name: "d", Skill: 7},
		{Name: "e", Skill: 0},
		{Name: "f", Skill: -2.5},
		{Name: "g", Skill: 12},
	}

	p, err := Seed(players, 3)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	seen := make(map[string]int)
	for _, team := range p.Teams {
		for _, m := range team.Members {
			seen[m.Name]++
		}
	}
	if len(seen) != len(players) {
		t.Fatalf("partition has %d distinct players, want %d", len(seen), len(players))
	}
	for _, pl := range players {
		if seen[pl.Name] != 1 {
			t.Errorf("player %q assigned %d times, want exactly once", pl.Name, seen[pl.Name])
		}
	}
}

func TestSeedStableTies(t *testing.T) {
	// Equal skills keep input order, so the partition is reproducible.
	players := []Player{
		{Name: "first", Skill: 10},
		{Name: "second", Skill: 10},
		{Name: "third", Skill: 10},
	}

	p, err := Seed(players, 3)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if got := p.Teams[i].Members[0].Name; got != want {
			t.Errorf("team %d got %q, want %q", i, got, want)
		}
	}
}

func TestSeedIdempotent(t *testing.T) {
	players := []Player{
		{Name: "a", Skill: 9.1},
		{Name: "b", Skill: 4.4},
		{Name: "c", Skill: 4.4},
		{Name: "d", Skill: 2.0},
	}

	p1, err := Seed(players, 2)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	p2, err := Seed(players, 2)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if !reflect.DeepEqual(p1, p2) {
		t.Errorf("seeding twice produced different partitions:\n%+v\n%+v", p1, p2)
	}
}

func TestSeedMoreTeamsThanPlayers(t *testing.T) {
	players := []Player{
		{Name: "a", Skill: 3},
		{Name: "b", Skill: 2},
		{Name: "c", Skill: 1},
	}

	p, err := Seed(players, 5)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if len(p.Teams) != 5 {
		t.Fatalf("len(Teams) = %d, want 5", len(p.Teams))
	}

	empty := 0
	for _, team := range p.Teams {
		switch team.Size() {
		case 0:
			empty++
			if avg := team.AverageSkill(); avg != 0 {
				t.Errorf("empty team average = %v, want 0", avg)
			}
		case 1:
		default:
			t.Errorf("team %q has %d members, want 0 or 1", team.Label, team.Size())
		}
	}
	if empty != 2 {
		t.Errorf("empty teams = %d, want 2", empty)
	}

	// Cost must be computable with empty teams counted at average 0.
	_ = p.Cost()
}

func TestSeedEmptyPlayers(t *testing.T) {
	p, err := Seed(nil, 3)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if len(p.Teams) != 3 {
		t.Fatalf("len(Teams) = %d, want 3", len(p.Teams))
	}
	if cost := p.Cost(); cost != 0 {
		t.Errorf("Cost() = %v, want 0", cost)
	}
}

func TestSeedInvalidTeamCount(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		_, err := Seed([]Player{{Name: "a", Skill: 1}}, count)
		if !errors.Is(err, errors.ErrInvalidTeamCount) {
			t.Errorf("Seed(_, %d) error = %v, want ErrInvalidTeamCount", count, err)
		}
	}
}

func TestSeedDoesNotModifyInput(t *testing.T) {
	players := []Player{
		{Name: "low", Skill: 1},
		{Name: "high", Skill: 9},
	}

	if _, err := Seed(players, 2); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if players[0].Name != "low" || players[1].Name != "high" {
		t.Errorf("input slice was reordered: %+v", players)
	}
}

func memberSkills(t *Team) []float64 {
	skills := make([]float64, 0, len(t.Members))
	for _, m := range t.Members {
		skills = append(skills, m.Skill)
	}
	return skills
}
