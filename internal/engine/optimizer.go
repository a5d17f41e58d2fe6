package engine

// Source supplies the random draws for the optimizer. *math/rand.Rand
// satisfies it; tests inject a scripted sequence for reproducible runs.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// Optimize runs randomized hill-climbing on the partition for up to
// maxTrials trials and returns the final cost. Each trial draws two
// distinct teams and one member from each, evaluates the cost as if
// those members were swapped, and commits the swap only on strict
// improvement. The partition is mutated in place.
//
// Evaluating a hypothetical swap only recomputes the two affected team
// averages and patches them into a scratch copy of the averages array,
// keeping each trial O(teamCount) regardless of team size.
//
// Cost is monotonically non-increasing across trials. The search is
// greedy with no acceptance of equal-or-worse states, so it can settle
// in a local optimum; run-to-run variation from the random draws is an
// accepted property. Empty teams are never chosen as swap sources but
// still count toward the cost (their average is 0).
func Optimize(p *Partition, maxTrials int, src Source) float64 {
	k := len(p.Teams)
	avgs := p.averages(nil)
	cost := StdDev(avgs)
	if k < 2 {
		return cost
	}

	scratch := make([]float64, k)
	for trial := 0; trial < maxTrials; trial++ {
		if cost == 0 {
			break
		}

		a := src.Intn(k)
		b := src.Intn(k)
		if a == b {
			// Force distinct teams without burning another draw.
			b = (b + 1) % k
		}

		ta, tb := p.Teams[a], p.Teams[b]
		if len(ta.Members) == 0 || len(tb.Members) == 0 {
			continue
		}

		i := src.Intn(len(ta.Members))
		j := src.Intn(len(tb.Members))
		pa, pb := ta.Members[i], tb.Members[j]

		copy(scratch, avgs)
		scratch[a] = (ta.TotalSkill - pa.Skill + pb.Skill) / float64(len(ta.Members))
		scratch[b] = (tb.TotalSkill - pb.Skill + pa.Skill) / float64(len(tb.Members))

		next := StdDev(scratch)
		if next < cost {
			ta.Members[i], tb.Members[j] = pb, pa
			ta.TotalSkill += pb.Skill - pa.Skill
			tb.TotalSkill += pa.Skill - pb.Skill
			avgs[a], avgs[b] = scratch[a], scratch[b]
			cost = next
		}
	}

	return cost
}
