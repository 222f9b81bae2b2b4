package rankings

// GameResult is one team's view of a completed game. Exactly two of these are
// created per source game, one from each participant's perspective, with
// PointsFor and PointsAgainst swapped between them.
type GameResult struct {
	Opponent      string `json:"opp"`
	PointsFor     int    `json:"for"`
	PointsAgainst int    `json:"against"`
	Week          int    `json:"week"`
	NeutralSite   bool   `json:"neutral,omitempty"`
	Home          bool   `json:"home,omitempty"`
	Away          bool   `json:"away,omitempty"`
}

// Won reports whether the owning team won this game.
func (g GameResult) Won() bool {
	return g.PointsFor > g.PointsAgainst
}

// Team is the per-team record enriched stage by stage as the pipeline runs.
// Games grows only during attachment and is read-only afterwards; the derived
// numeric fields are each written exactly once, in pipeline order.
type Team struct {
	Name           string `json:"name"`
	Conference     string `json:"conference"`
	Classification string `json:"classification"`

	Games []GameResult `json:"games"`

	Wins   int `json:"w"`
	Losses int `json:"l"`

	Results      float64 `json:"results"`
	SOSIter      float64 `json:"-"`
	OWP          float64 `json:"-"`
	SOS          float64 `json:"sos"`
	Quality      float64 `json:"quality"`
	RecencyTotal float64 `json:"-"`
	Recency      float64 `json:"recency"`
	Perf         float64 `json:"perf"`
	PFPerGame    float64 `json:"pf_pg"`
	PAPerGame    float64 `json:"pa_pg"`
	OffPct       float64 `json:"offPct"`
	DefPct       float64 `json:"defPct"`

	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	SOSRankAll int     `json:"sosRankAll"`
	SOSRank    int     `json:"sosRank"`

	// Display decorations filled in by Enrich; zero until then.
	PF        int `json:"pf"`
	PA        int `json:"pa"`
	Top10Wins int `json:"top10Wins"`
	Top25Wins int `json:"top25Wins"`
	Top50Wins int `json:"top50Wins"`
	OffRank   int `json:"offRank"`
	DefRank   int `json:"defRank"`
}

// GamesPlayed returns the number of attached games.
func (t *Team) GamesPlayed() int {
	return len(t.Games)
}
