package rankings

import "sort"

// sosIterations is the number of fixed-point relaxation passes over the game
// graph. Five passes are enough for the values to settle at this graph size.
const sosIterations = 5

// iterateSOS propagates opponents' results through the game graph. Each pass
// first computes every team's iterated SOS from current results, then drifts
// every team's results 10% toward its schedule. The drift couples the results
// and SOS signals on purpose: it smooths results toward schedule-adjusted
// values.
func (r *Run) iterateSOS() {
	teams := r.Teams()
	for i := 0; i < sosIterations; i++ {
		for _, t := range teams {
			if len(t.Games) == 0 {
				t.SOSIter = 0
				continue
			}
			var opp float64
			for _, g := range t.Games {
				opp += r.teams[g.Opponent].Results
			}
			t.SOSIter = opp / float64(len(t.Games))
		}
		for _, t := range teams {
			t.Results = 0.9*t.Results + 0.1*t.SOSIter
		}
	}
}

// computeOWP computes each team's opponents' win percentage. Opponents with
// no games count as 0.500.
func (r *Run) computeOWP() {
	for _, t := range r.Teams() {
		if len(t.Games) == 0 {
			t.OWP = 0
			continue
		}
		var sum float64
		for _, g := range t.Games {
			opp := r.teams[g.Opponent]
			if len(opp.Games) == 0 {
				sum += 0.5
				continue
			}
			sum += float64(opp.Wins) / float64(len(opp.Games))
		}
		t.OWP = sum / float64(len(t.Games))
	}
}

// blendSOS combines the iterated and win-percentage signals into the final
// schedule strength, compressing the tail below -0.15 so weak early slates
// are not punished without bound, and scaling up modestly late in the season.
func (r *Run) blendSOS() {
	for _, t := range r.Teams() {
		if len(t.Games) == 0 {
			t.SOS = 0
			continue
		}
		sos := 0.72*t.SOSIter + 0.28*(t.OWP-0.5)
		if sos < -0.15 {
			sos = -0.15 + 0.6*(sos+0.15)
		}
		if r.Late {
			sos *= 1.06
		}
		t.SOS = sos
	}
}

// rankSOSAll records a schedule-strength rank across the full pool, lower
// subdivisions included, before any publish filtering happens.
func (r *Run) rankSOSAll() {
	sorted := r.Teams()
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SOS > sorted[j].SOS })
	for i, t := range sorted {
		t.SOSRankAll = i + 1
	}
}
