package rankings

import (
	"math"
	"sort"
)

// computeOpponentAverages fills in points for/against per game for every team.
func (r *Run) computeOpponentAverages() {
	for _, t := range r.Teams() {
		var pf, pa float64
		for _, g := range t.Games {
			pf += float64(g.PointsFor)
			pa += float64(g.PointsAgainst)
		}
		gp := float64(max(1, len(t.Games)))
		t.PFPerGame = pf / gp
		t.PAPerGame = pa / gp
	}
}

// computePerformance derives the opponent-adjusted per-game scoring index:
// how a team scored relative to what its opponent typically allows, plus how
// it defended relative to what its opponent typically scores.
func (r *Run) computePerformance() {
	r.computeOpponentAverages()
	for _, t := range r.Teams() {
		var agg float64
		for _, g := range t.Games {
			opp := r.teams[g.Opponent]
			offRel := (float64(g.PointsFor) - opp.PAPerGame) / 28
			defRel := (opp.PFPerGame - float64(g.PointsAgainst)) / 28
			agg += clamp(offRel+defRel, -1.2, 1.2)
		}
		t.Perf = safeDiv(agg, float64(max(1, len(t.Games))))
	}
}

// percentiles maps each value to its rank percentile in 0..1. The rank of a
// value is the position of the first strictly greater sorted value, or n-1 if
// none is greater, so tied values share a percentile.
func percentiles(vals []float64, higherIsBetter bool) []float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	denom := n - 1
	if denom < 1 {
		denom = 1
	}

	out := make([]float64, len(vals))
	for i, v := range vals {
		rank := n - 1
		for j, x := range sorted {
			if x > v {
				rank = j
				break
			}
		}
		p := float64(rank) / float64(denom)
		if !higherIsBetter {
			p = 1 - p
		}
		out[i] = p
	}
	return out
}

// computeEfficiencyPercentiles ranks every team's scoring offense (higher is
// better) and scoring defense (lower is better) across the full pool.
func (r *Run) computeEfficiencyPercentiles() {
	teams := r.Teams()
	pf := make([]float64, len(teams))
	pa := make([]float64, len(teams))
	for i, t := range teams {
		pf[i] = t.PFPerGame
		pa[i] = t.PAPerGame
	}
	offPct := percentiles(pf, true)
	defPct := percentiles(pa, false)
	for i, t := range teams {
		t.OffPct = offPct[i]
		t.DefPct = defPct[i]
	}
}

// efficiency blends the offensive and defensive percentiles. The geometric
// mean demands competence on both sides of the ball; the balance term adds up
// to 0.02 for well-rounded teams.
func efficiency(offPct, defPct float64) float64 {
	core := math.Sqrt(offPct * defPct)
	balance := 0.02 * (1 - math.Abs(offPct-defPct))
	return clamp(core+balance, 0, 1)
}
