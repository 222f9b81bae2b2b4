package rankings

import "sort"

// topSets are the dynamically derived opponent tiers used only as lookup
// tables during resume scoring. They are recomputed each run, never stored.
type topSets struct {
	top10 map[string]struct{}
	top25 map[string]struct{}
	top50 map[string]struct{}
}

func (s topSets) in10(name string) bool { _, ok := s.top10[name]; return ok }
func (s topSets) in25(name string) bool { _, ok := s.top25[name]; return ok }
func (s topSets) in50(name string) bool { _, ok := s.top50[name]; return ok }

// buildTopSets derives interim top-10/25/50 opponent sets from an interim
// composite of results plus schedule strength, across the full pool.
func (r *Run) buildTopSets() topSets {
	sorted := r.Teams()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Results+sorted[i].SOS > sorted[j].Results+sorted[j].SOS
	})

	take := func(n int) map[string]struct{} {
		if n > len(sorted) {
			n = len(sorted)
		}
		set := make(map[string]struct{}, n)
		for _, t := range sorted[:n] {
			set[t.Name] = struct{}{}
		}
		return set
	}
	return topSets{top10: take(10), top25: take(25), top50: take(50)}
}

// evaluateQuality scores each team's resume: wins over tiered opponents earn
// credit from the highest matching tier only, losses outside the top tiers
// carry debits, and losses to top-25 opponents are free.
func (r *Run) evaluateQuality(sets topSets) {
	for _, t := range r.Teams() {
		var q float64
		for _, g := range t.Games {
			if g.Won() {
				switch {
				case sets.in10(g.Opponent):
					q += 0.50
				case sets.in25(g.Opponent):
					q += 0.32
				case sets.in50(g.Opponent):
					q += 0.16
				}
			} else {
				switch {
				case !sets.in50(g.Opponent):
					q -= 0.26 // bad loss
				case !sets.in25(g.Opponent):
					q -= 0.11 // decent loss
				}
			}
		}
		t.Quality = safeDiv(q, float64(max(1, len(t.Games))))
	}
}
