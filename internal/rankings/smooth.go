package rankings

// smoothWindow is the number of immediately lower-ranked teams each team is
// compared against during head-to-head smoothing. The window size and the
// double condition below are empirical; do not generalize them.
const (
	smoothWindow = 7
	smoothNudge  = 0.004
)

// applyHeadToHeadNudge gives a small boost to teams ranked just below a team
// they have a clean record against: the lower team has not lost to the higher
// team, and the higher team has not beaten them. All nudges are computed
// against the pre-nudge standings and applied in one batch so the result
// cannot depend on application order.
func applyHeadToHeadNudge(sorted []*Team) {
	beatenBy := make(map[string]map[string]struct{}, len(sorted))
	for _, t := range sorted {
		beatenBy[t.Name] = make(map[string]struct{})
	}
	for _, t := range sorted {
		for _, g := range t.Games {
			if !g.Won() {
				beatenBy[t.Name][g.Opponent] = struct{}{}
			}
		}
	}

	nudges := make(map[string]float64)
	for i, t := range sorted {
		lossesTo := beatenBy[t.Name]
		for j := i + 1; j < len(sorted) && j <= i+smoothWindow; j++ {
			lower := sorted[j]
			_, beatLower := beatenBy[lower.Name][t.Name]
			_, lostToLower := lossesTo[lower.Name]
			if !beatLower && !lostToLower {
				nudges[lower.Name] += smoothNudge
			}
		}
	}

	for _, t := range sorted {
		t.Score += nudges[t.Name]
	}
}
