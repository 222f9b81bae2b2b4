package rankings

import "math"

// Composite blend weights. They sum to 1 before the bonus, drag, and prior
// adjustments. The opponent-adjusted performance index is not a term here:
// efficiency already captures most of that signal, so Perf is carried on the
// output for display only.
const (
	weightEfficiency = 0.45
	weightResults    = 0.25
	weightSOS        = 0.15
	weightQuality    = 0.10
	weightRecency    = 0.05
)

// priorWeight fades the preseason prior as games accumulate. The clamp runs
// after the linear fade, so the weight at zero games played is the cap, 0.08,
// not the raw 0.12. Keep that order.
func priorWeight(gamesPlayed int) float64 {
	return clamp(0.12-0.02*float64(gamesPlayed), 0, 0.08)
}

// scoreComposite blends every finalized signal into the team's scalar score,
// then applies the undefeated bonus, the early-loss drag, and the fading
// preseason prior.
func (r *Run) scoreComposite(prior *priorIndex) {
	for _, t := range r.Teams() {
		gp := len(t.Games)
		t.Recency = safeDiv(t.RecencyTotal, float64(max(1, gp)))

		eff := efficiency(t.OffPct, t.DefPct)
		core := weightEfficiency*eff +
			weightResults*t.Results +
			weightSOS*t.SOS +
			weightQuality*t.Quality +
			weightRecency*t.Recency

		if t.Losses == 0 && gp >= 3 {
			// ramps in over roughly the first six games, tilted toward
			// more efficient teams
			scale := 1 - math.Exp(-float64(gp)/5)
			effTilt := 0.7 + 0.3*eff
			core += math.Min(0.06, 0.048*scale*effTilt)
		}

		if t.Losses >= 1 && gp <= 6 {
			// fades to nothing by game 7
			core -= 0.006 * float64(t.Losses) * float64(7-gp) / 7
		}

		pv, _ := prior.get(t.Name) // unrated teams contribute zero
		w := priorWeight(gp)
		t.Score = (1-w)*core + w*pv
	}
}
