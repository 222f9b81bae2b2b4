package cfbdata

import (
	"strconv"
	"strings"
)

// Endpoint is one downloadable dataset: a stable slug used for the saved file
// name and the candidate request paths tried in order.
type Endpoint struct {
	Slug       string
	Candidates []string
}

// Season datasets in download order. The slugs are the on-disk file names the
// ranking pipeline and its consumers key on; changing one is a breaking
// change to every stored season.
var Endpoints = []Endpoint{
	{Slug: "conferences", Candidates: []string{"/conferences"}},
	{Slug: "divisions", Candidates: []string{"/divisions"}},
	{Slug: "venues", Candidates: []string{"/venues"}},

	{Slug: "teams", Candidates: []string{"/teams?year={year}", "/teams?season={year}"}},
	{Slug: "teams-fbs", Candidates: []string{"/teams/fbs?year={year}", "/teams?season={year}&classification=fbs"}},

	{Slug: "games-regular", Candidates: []string{"/games?year={year}&seasonType=regular", "/games?season={year}&seasonType=regular"}},
	{Slug: "games-postseason", Candidates: []string{"/games?year={year}&seasonType=postseason", "/games?season={year}&seasonType=postseason"}},

	{Slug: "games-lines", Candidates: []string{"/lines?year={year}", "/betting/lines?season={year}"}},
	{Slug: "games-spreads", Candidates: []string{"/lines/spreads?year={year}", "/betting/lines/spreads?season={year}"}},
	{Slug: "games-totals", Candidates: []string{"/lines/totals?year={year}", "/betting/lines/totals?season={year}"}},

	{Slug: "polls-rankings", Candidates: []string{"/rankings?year={year}", "/rankings?season={year}"}},
	{Slug: "records", Candidates: []string{"/records?year={year}", "/records?season={year}"}},

	{Slug: "stats-team-season", Candidates: []string{"/stats/season?year={year}", "/stats/season?season={year}"}},
	{Slug: "stats-player-season", Candidates: []string{"/stats/player/season?year={year}", "/stats/player/season?season={year}"}},

	{Slug: "recruiting-players", Candidates: []string{"/recruiting/players?year={year}", "/recruiting/players?season={year}"}},
	{Slug: "recruiting-teams", Candidates: []string{"/recruiting/teams?year={year}", "/recruiting/teams?season={year}"}},

	{Slug: "elo-ratings", Candidates: []string{"/ratings/elo?year={year}", "/ratings/elo?season={year}"}},
	{Slug: "sp-ratings", Candidates: []string{"/ratings/sp?year={year}", "/ratings/sp?season={year}"}},
}

// Slugs used directly by the ranking pipeline.
const (
	SlugTeams     = "teams"
	SlugTeamsFBS  = "teams-fbs"
	SlugGames     = "games-regular"
	SlugSPRatings = "sp-ratings"
)

func expandPath(tmpl string, year int) string {
	y := strconv.Itoa(year)
	s := strings.ReplaceAll(tmpl, "{year}", y)
	return strings.ReplaceAll(s, "{season}", y)
}
