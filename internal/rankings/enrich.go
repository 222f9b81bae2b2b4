package rankings

import "sort"

// Enrich decorates a published ranking with display aggregates: season point
// totals, win counts against final top-10/25/50 opponents, and offensive and
// defensive rank positions within the published pool. It reads only final
// ranks and attached games and never changes scores or ordering.
func Enrich(ranked []*Team) {
	rankByName := make(map[string]int, len(ranked))
	for _, t := range ranked {
		rankByName[t.Name] = t.Rank
	}

	for _, t := range ranked {
		var pf, pa, t10, t25, t50 int
		for _, g := range t.Games {
			pf += g.PointsFor
			pa += g.PointsAgainst
			oppRank, ok := rankByName[g.Opponent]
			if !ok {
				oppRank = 999 // unpublished opponent
			}
			if g.Won() {
				if oppRank <= 10 {
					t10++
				}
				if oppRank <= 25 {
					t25++
				}
				if oppRank <= 50 {
					t50++
				}
			}
		}
		t.PF, t.PA = pf, pa
		t.Top10Wins, t.Top25Wins, t.Top50Wins = t10, t25, t50
	}

	perGame := func(total int, t *Team) float64 {
		return float64(total) / float64(max(1, len(t.Games)))
	}
	byOff := append([]*Team(nil), ranked...)
	sort.SliceStable(byOff, func(i, j int) bool {
		return perGame(byOff[i].PF, byOff[i]) > perGame(byOff[j].PF, byOff[j])
	})
	for i, t := range byOff {
		t.OffRank = i + 1
	}
	byDef := append([]*Team(nil), ranked...)
	sort.SliceStable(byDef, func(i, j int) bool {
		return perGame(byDef[i].PA, byDef[i]) < perGame(byDef[j].PA, byDef[j])
	})
	for i, t := range byDef {
		t.DefRank = i + 1
	}
}
