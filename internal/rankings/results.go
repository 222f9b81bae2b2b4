package rankings

// marginCap bounds the margin of victory counted toward a game score: blowouts
// past this point carry no extra credit.
const marginCap = 24.0

// classLowerTier is the subdivision whose games carry discounted credit and
// amplified penalties for top-tier teams.
const classLowerTier = "fcs"

func locationWeight(g GameResult) float64 {
	if g.NeutralSite || g.Home {
		return 1.0
	}
	if g.Away {
		return 1.02 // small road tilt; margin is already capped
	}
	return 1.0
}

func classWeights(opp *Team) (winMul, lossMul float64) {
	if opp != nil && opp.Classification == classLowerTier {
		return 0.75, 1.30
	}
	return 1.00, 1.00
}

// evaluateResults converts each team's attached games into its results signal:
// win/loss base values with capped margin, venue weighting, subdivision
// adjustment, and a small recency increment per week. Win/loss counts and the
// recency total accumulate here as a side effect.
func (r *Run) evaluateResults() {
	for _, t := range r.Teams() {
		t.Results = r.resultsFor(t)
	}
}

func (r *Run) resultsFor(t *Team) float64 {
	var sum, recTotal float64
	wins, losses := 0, 0
	for _, g := range t.Games {
		margin := clamp(float64(g.PointsFor-g.PointsAgainst), -marginCap, marginCap)
		week := g.Week
		if week < 1 {
			week = 1
		}
		recency := 0.02 * float64(week)

		winMul, lossMul := classWeights(r.teams[g.Opponent])
		base := -1.20 * lossMul
		if g.Won() {
			base = 1.30 * winMul
		}
		gameScore := base + (margin/marginCap)*0.28
		sum += gameScore*locationWeight(g) + recency

		if g.Won() {
			wins++
		} else {
			losses++
		}
		recTotal += recency
	}

	t.Wins = wins
	t.Losses = losses
	t.RecencyTotal = recTotal

	if len(t.Games) == 0 {
		return 0
	}
	return sum / float64(len(t.Games))
}
