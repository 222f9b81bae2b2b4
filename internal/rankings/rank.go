// Package rankings computes a deterministic ranking of college football teams
// from season game results. The engine is a single-pass, in-memory pipeline:
// team indexing, game attachment, a results signal, iterated schedule
// strength, resume quality against dynamic opponent tiers, percentile
// efficiency, a weighted composite with nonlinear adjustments, and a final
// head-to-head smoothing pass. The full pool (all subdivisions) participates
// in every computation; only the top subdivision is published.
package rankings

import "sort"

// classPublished is the classification of teams included in the published
// ranking. Lower subdivisions stay in the pool as opponents only.
const classPublished = "fbs"

// sentinelScore marks every team of a run that had no usable games; the
// alphabetical fallback ordering carries it in place of a computed score.
const sentinelScore = -0.085

// lateSeasonMeanGames is the mean attached-entries-per-team threshold past
// which schedule strength is scaled to full late-season weight.
const lateSeasonMeanGames = 4.5

// Rank runs the complete pipeline over raw team, game, and optional preseason
// rating records and returns the published teams in rank order. The result is
// deterministic for fixed inputs. A dataset with zero usable games degrades
// to the published pool sorted alphabetically with the sentinel score.
func Rank(teamsRaw, gamesRaw, priorsRaw []Record) []*Team {
	idx := BuildIndex(teamsRaw)
	run := newRun(idx)
	run.AttachGames(idx, gamesRaw)

	if run.totalAttached() == 0 {
		return run.fallbackRanking()
	}

	run.MeanGames = float64(run.totalAttached()) / float64(max(1, len(run.order)))
	run.Late = run.MeanGames >= lateSeasonMeanGames

	run.evaluateResults()
	run.iterateSOS()
	run.computeOWP()
	run.blendSOS()
	run.rankSOSAll()
	run.evaluateQuality(run.buildTopSets())
	run.computePerformance()
	run.computeEfficiencyPercentiles()
	run.scoreComposite(newPriorIndex(priorsRaw))

	sorted := run.Teams()
	byScore := func(i, j int) bool { return sorted[i].Score > sorted[j].Score }
	sort.SliceStable(sorted, byScore)
	applyHeadToHeadNudge(sorted)
	sort.SliceStable(sorted, byScore)

	published := make([]*Team, 0, len(sorted))
	for _, t := range sorted {
		if t.Classification == classPublished {
			published = append(published, t)
		}
	}
	for i, t := range published {
		t.Rank = i + 1
	}

	bySOS := append([]*Team(nil), published...)
	sort.SliceStable(bySOS, func(i, j int) bool { return bySOS[i].SOS > bySOS[j].SOS })
	for i, t := range bySOS {
		t.SOSRank = i + 1
	}

	return published
}

func (r *Run) fallbackRanking() []*Team {
	published := make([]*Team, 0, len(r.order))
	for _, t := range r.Teams() {
		if t.Classification == classPublished {
			published = append(published, t)
		}
	}
	sort.SliceStable(published, func(i, j int) bool { return published[i].Name < published[j].Name })
	for i, t := range published {
		t.Rank = i + 1
		t.Score = sentinelScore
	}
	return published
}
