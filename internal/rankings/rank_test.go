package rankings

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

// leagueFixture builds a deterministic 63-team season. Sixty ladder teams
// (ten elite, forty mid-pack, ten lower-subdivision) play a six-round
// round-robin rotation where the better-seeded team always wins. On top of
// that, Alpha goes 3-0 against bottom feeders by three touchdowns, Bravo goes
// 3-0 against the elite by a field goal, and Idle State never takes the field.
func leagueFixture() (teams []Record, games []Record) {
	ladder := make([]string, 0, 60)
	for i := 1; i <= 10; i++ {
		name := fmt.Sprintf("Elite%02d", i)
		ladder = append(ladder, name)
		teams = append(teams, teamRecord(name, "fbs"))
	}
	for i := 1; i <= 40; i++ {
		name := fmt.Sprintf("Mid%02d", i)
		ladder = append(ladder, name)
		teams = append(teams, teamRecord(name, "fbs"))
	}
	for i := 1; i <= 10; i++ {
		name := fmt.Sprintf("Weak%02d", i)
		ladder = append(ladder, name)
		teams = append(teams, teamRecord(name, "fcs"))
	}
	teams = append(teams,
		teamRecord("Alpha", "fbs"),
		teamRecord("Bravo", "fbs"),
		teamRecord("Idle State", "fbs"),
	)

	// circle-method rotation: seat 0 fixed, the rest rotate each round
	seats := make([]int, 60)
	for i := range seats {
		seats[i] = i
	}
	for round := 0; round < 6; round++ {
		for k := 0; k < 30; k++ {
			a, b := seats[k], seats[59-k]
			winner, loser := a, b
			if b < a {
				winner, loser = b, a
			}
			margin := 3 + (loser-winner)%21
			games = append(games, gameRecord(ladder[winner], ladder[loser], 10+margin, 10, round+1))
		}
		rotated := make([]int, 60)
		rotated[0] = seats[0]
		rotated[1] = seats[59]
		copy(rotated[2:], seats[1:59])
		seats = rotated
	}

	for i := 1; i <= 3; i++ {
		games = append(games, gameRecord("Alpha", fmt.Sprintf("Weak%02d", i), 24, 3, i))
		games = append(games, gameRecord("Bravo", fmt.Sprintf("Elite%02d", i), 24, 21, i))
	}
	return teams, games
}

func findTeam(ranked []*Team, name string) *Team {
	for _, t := range ranked {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func TestRankDeterminism(t *testing.T) {
	teams, games := leagueFixture()
	first := Rank(teams, games, nil)
	second := Rank(teams, games, nil)

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("order differs at %d: %q vs %q", i, first[i].Name, second[i].Name)
		}
		if first[i].Score != second[i].Score {
			t.Errorf("score differs for %q: %v vs %v", first[i].Name, first[i].Score, second[i].Score)
		}
	}
}

func TestRankTotalityAndMonotonicity(t *testing.T) {
	teams, games := leagueFixture()
	ranked := Rank(teams, games, nil)

	// every published team is FBS with a unique 1..N rank
	seen := make(map[int]bool)
	for i, tm := range ranked {
		if tm.Classification != "fbs" {
			t.Errorf("published team %q has classification %q", tm.Name, tm.Classification)
		}
		if tm.Rank != i+1 {
			t.Errorf("rank gap: position %d has rank %d", i, tm.Rank)
		}
		if seen[tm.Rank] {
			t.Errorf("duplicate rank %d", tm.Rank)
		}
		seen[tm.Rank] = true
	}

	// scores are non-increasing after smoothing and the final sort
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("score inversion at rank %d: %v > %v", i+1, ranked[i].Score, ranked[i-1].Score)
		}
	}

	// SOS ranks cover the published pool without gaps
	sosSeen := make(map[int]bool)
	for _, tm := range ranked {
		if tm.SOSRank < 1 || tm.SOSRank > len(ranked) || sosSeen[tm.SOSRank] {
			t.Errorf("bad published SOS rank %d for %q", tm.SOSRank, tm.Name)
		}
		sosSeen[tm.SOSRank] = true
		if tm.SOSRankAll < 1 {
			t.Errorf("missing full-pool SOS rank for %q", tm.Name)
		}
	}
}

func TestRankGracefulDegradation(t *testing.T) {
	teams := []Record{
		teamRecord("Zulu", "fbs"),
		teamRecord("Alpha", "fbs"),
		teamRecord("Mike", "fbs"),
		teamRecord("Foxtrot", "fcs"), // not published
	}
	ranked := Rank(teams, nil, nil)

	want := []string{"Alpha", "Mike", "Zulu"}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d published teams, got %d", len(want), len(ranked))
	}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("expected alphabetical position %d = %q, got %q", i, name, ranked[i].Name)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("expected rank %d, got %d", i+1, ranked[i].Rank)
		}
		if ranked[i].Score != sentinelScore {
			t.Errorf("expected sentinel score %v, got %v", sentinelScore, ranked[i].Score)
		}
	}
}

func TestRankQualityScenario(t *testing.T) {
	teams, games := leagueFixture()
	ranked := Rank(teams, games, nil)

	alpha := findTeam(ranked, "Alpha")
	bravo := findTeam(ranked, "Bravo")
	if alpha == nil || bravo == nil {
		t.Fatal("fixture teams missing from published ranking")
	}
	if alpha.Wins != 3 || alpha.Losses != 0 || bravo.Wins != 3 || bravo.Losses != 0 {
		t.Fatalf("fixture records wrong: Alpha %d-%d, Bravo %d-%d", alpha.Wins, alpha.Losses, bravo.Wins, bravo.Losses)
	}

	// identical records, but Bravo beat ranked opponents by less while Alpha
	// fattened up on bottom feeders: resume quality must favor Bravo
	if bravo.Quality <= alpha.Quality {
		t.Errorf("expected Bravo quality > Alpha quality, got %v <= %v", bravo.Quality, alpha.Quality)
	}
}

func TestRankZeroGameTeam(t *testing.T) {
	teams, games := leagueFixture()
	ranked := Rank(teams, games, nil)

	idle := findTeam(ranked, "Idle State")
	if idle == nil {
		t.Fatal("Idle State missing from published ranking")
	}
	if idle.Results != 0 || idle.SOS != 0 || idle.Quality != 0 {
		t.Errorf("zero-game defaults wrong: results %v, sos %v, quality %v", idle.Results, idle.SOS, idle.Quality)
	}
	// the undefeated bonus is gated on three games played: before smoothing
	// the score is exactly the prior-discounted efficiency and nothing else.
	// With no games, the team has a clean record against every one of the 7
	// teams directly above it, so each nudges it once.
	want := (1-priorWeight(0))*(weightEfficiency*efficiency(idle.OffPct, idle.DefPct)) + 7*smoothNudge
	if math.Abs(idle.Score-want) > 1e-12 {
		t.Errorf("expected bare score %v, got %v", want, idle.Score)
	}
}

func TestRankDroppedGameIsolation(t *testing.T) {
	teams, games := leagueFixture()

	ghostLow := append(append([]Record(nil), games...), gameRecord("Alpha", "Phantom Tech", 21, 20, 4))
	ghostHigh := append(append([]Record(nil), games...), gameRecord("Alpha", "Phantom Tech", 63, 0, 4))

	low := Rank(teams, ghostLow, nil)
	high := Rank(teams, ghostHigh, nil)

	if len(low) != len(high) {
		t.Fatalf("published counts differ: %d vs %d", len(low), len(high))
	}
	for i := range low {
		if low[i].Name != high[i].Name || low[i].Quality != high[i].Quality || low[i].Score != high[i].Score {
			t.Errorf("dropped game leaked into scoring for %q", low[i].Name)
		}
	}
}

func TestPriorExactBlend(t *testing.T) {
	priors := []Record{
		{"team": "X", "rating": float64(25)},
		{"team": "Other", "rating": float64(5)},
		{"team": "Another", "rating": float64(-10)},
	}
	mk := func() *Run {
		tm := &Team{
			Name:           "X",
			Classification: "fbs",
			Games: []GameResult{
				{Opponent: "O1", PointsFor: 21, PointsAgainst: 24, Week: 1},
				{Opponent: "O2", PointsFor: 31, PointsAgainst: 10, Week: 2},
			},
			Wins:   1,
			Losses: 1,
		}
		return &Run{order: []string{"X"}, teams: map[string]*Team{"X": tm}}
	}

	unrated := mk()
	unrated.scoreComposite(newPriorIndex(nil))
	rated := mk()
	rated.scoreComposite(newPriorIndex(priors))

	// the core is prior-independent, so the score shift is exactly the
	// prior weight times the scaled prior value
	pv, ok := newPriorIndex(priors).get("X")
	if !ok {
		t.Fatal("expected X to be rated")
	}
	wantShift := priorWeight(2) * pv
	gotShift := rated.Team("X").Score - unrated.Team("X").Score
	if math.Abs(gotShift-wantShift) > 1e-12 {
		t.Errorf("expected prior shift %v, got %v", wantShift, gotShift)
	}
}

func TestRankSmoothingBatch(t *testing.T) {
	// construct a standing where the 2nd team has a clean record against the
	// 1st: the nudge applies once, from the pre-nudge standings
	a := &Team{Name: "A", Score: 0.50}
	b := &Team{Name: "B", Score: 0.49}
	c := &Team{Name: "C", Score: 0.10, Games: []GameResult{{Opponent: "A", PointsFor: 10, PointsAgainst: 20}}}
	sorted := []*Team{a, b, c}
	applyHeadToHeadNudge(sorted)

	// B never played A: clean record, nudged once from A's window
	if got, want := b.Score, 0.49+smoothNudge; math.Abs(got-want) > 1e-12 {
		t.Errorf("expected B nudged once to %v, got %v", want, got)
	}
	// C lost to A, so only B's window nudges it
	if got, want := c.Score, 0.10+smoothNudge; math.Abs(got-want) > 1e-12 {
		t.Errorf("expected C nudged once to %v, got %v", want, got)
	}
	// the top team is never nudged
	if a.Score != 0.50 {
		t.Errorf("expected A untouched, got %v", a.Score)
	}
}

func TestEnrich(t *testing.T) {
	teams, games := leagueFixture()
	ranked := Rank(teams, games, nil)
	Enrich(ranked)

	bravo := findTeam(ranked, "Bravo")
	if bravo.PF != 72 || bravo.PA != 63 {
		t.Errorf("expected Bravo 72/63 season points, got %d/%d", bravo.PF, bravo.PA)
	}
	if bravo.Top50Wins < bravo.Top25Wins || bravo.Top25Wins < bravo.Top10Wins {
		t.Errorf("tier win counts must nest: %d/%d/%d", bravo.Top10Wins, bravo.Top25Wins, bravo.Top50Wins)
	}

	// off/def ranks form a permutation of the published pool
	offSeen := make(map[int]bool)
	for _, tm := range ranked {
		if tm.OffRank < 1 || tm.OffRank > len(ranked) || offSeen[tm.OffRank] {
			t.Errorf("bad offensive rank %d for %q", tm.OffRank, tm.Name)
		}
		offSeen[tm.OffRank] = true
	}

	// order and scores are untouched by enrichment
	if !sort.SliceIsSorted(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank }) {
		t.Error("enrichment disturbed rank order")
	}
}
