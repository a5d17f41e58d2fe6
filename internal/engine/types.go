package engine

// Player is a single rated roster entry. Players are immutable values;
// Skill is any finite rating where higher means stronger (for example a
// TrueSkill estimate).
type Player struct {
	Name  string
	Skill float64
}

// Team is one side of a partition. TotalSkill is a cached running sum of
// the members' skills and is updated incrementally on every mutation so
// that cost evaluation never needs an O(n) rescan.
type Team struct {
	Label      string
	Members    []Player
	TotalSkill float64
}

// Size returns the number of members on the team.
func (t *Team) Size() int {
	return len(t.Members)
}

// AverageSkill returns TotalSkill divided by the member count, or 0 for
// an empty team.
func (t *Team) AverageSkill() float64 {
	if len(t.Members) == 0 {
		return 0
	}
	return t.TotalSkill / float64(len(t.Members))
}

// add appends a player and keeps the cached total consistent.
func (t *Team) add(p Player) {
	t.Members = append(t.Members, p)
	t.TotalSkill += p.Skill
}

// Partition is an ordered set of teams covering every input player
// exactly once. It is created by Seed and mutated in place by Optimize;
// team count never changes after seeding, only team composition.
type Partition struct {
	Teams []*Team
}

// Cost returns the population standard deviation of the team average
// skills. A cost of 0 means every team has identical average skill.
func (p *Partition) Cost() float64 {
	return StdDev(p.averages(nil))
}

// TotalSkill returns the skill summed across all teams. Committed swaps
// conserve this value.
func (p *Partition) TotalSkill() float64 {
	var total float64
	for _, t := range p.Teams {
		total += t.TotalSkill
	}
	return total
}

// PlayerCount returns the number of players across all teams.
func (p *Partition) PlayerCount() int {
	n := 0
	for _, t := range p.Teams {
		n += len(t.Members)
	}
	return n
}

// averages fills buf (allocating if nil or too small) with the per-team
// average skills, in team order.
func (p *Partition) averages(buf []float64) []float64 {
	if cap(buf) < len(p.Teams) {
		buf = make([]float64, len(p.Teams))
	}
	buf = buf[:len(p.Teams)]
	for i, t := range p.Teams {
		buf[i] = t.AverageSkill()
	}
	return buf
}
