package cfbdata

import (
	"encoding/json"
	"fmt"
	"time"
)

// Game is the typed shape of one upstream game record. Points are pointers:
// games that have not been played yet come through with null scores and are
// unusable for ranking.
type Game struct {
	ID           int64      `json:"id"`
	Week         int        `json:"week"`
	StartTime    *time.Time `json:"start_date"`
	StartTimeTBD bool       `json:"start_time_tbd"`
	NeutralSite  bool       `json:"neutral_site"`
	HomeID       int64      `json:"home_id"`
	AwayID       int64      `json:"away_id"`
	HomeTeam     string     `json:"home_team"`
	AwayTeam     string     `json:"away_team"`
	HomePoints   *int       `json:"home_points"`
	AwayPoints   *int       `json:"away_points"`
}

// Scored reports whether both point totals are present.
func (g Game) Scored() bool {
	return g.HomePoints != nil && g.AwayPoints != nil
}

// ParseGames unmarshals a season game download.
func ParseGames(body []byte) ([]Game, error) {
	var games []Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("failed to unmarshal games response body: %v", err)
	}
	return games, nil
}

// CountScored returns how many games in the download are usable for ranking.
func CountScored(games []Game) int {
	n := 0
	for _, g := range games {
		if g.Scored() {
			n++
		}
	}
	return n
}
