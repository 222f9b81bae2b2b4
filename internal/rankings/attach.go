package rankings

var (
	gameHomeIDKeys   = []string{"home_id", "homeId", "homeTeamId", "homeTeamID"}
	gameAwayIDKeys   = []string{"away_id", "awayId", "awayTeamId", "awayTeamID"}
	gameHomeNameKeys = []string{"home", "homeTeam", "home_team", "team_home", "team1", "homeSchool", "home_school"}
	gameAwayNameKeys = []string{"away", "awayTeam", "away_team", "team_away", "team2", "awaySchool", "away_school"}
	gameHomePtsKeys  = []string{"home_points", "homePoints", "points_home", "home_score", "score1"}
	gameAwayPtsKeys  = []string{"away_points", "awayPoints", "points_away", "away_score", "score2"}
	gameWeekKeys     = []string{"week", "game_week", "gameWeek"}
	gameNeutralKeys  = []string{"neutral_site", "neutral", "isNeutral"}
)

type parsedGame struct {
	homeID, awayID     string
	homeName, awayName string
	homePts, awayPts   int
	week               int
	neutral            bool
}

func parseGames(gamesRaw []Record) []parsedGame {
	out := make([]parsedGame, 0, len(gamesRaw))
	for _, g := range gamesRaw {
		hp, hok := g.num(gameHomePtsKeys...)
		ap, aok := g.num(gameAwayPtsKeys...)
		if !hok || !aok {
			// unscored or malformed game, cannot contribute
			continue
		}
		week := 1
		if w, ok := g.num(gameWeekKeys...); ok {
			week = int(w)
		}
		out = append(out, parsedGame{
			homeID:   g.str(gameHomeIDKeys...),
			awayID:   g.str(gameAwayIDKeys...),
			homeName: g.str(gameHomeNameKeys...),
			awayName: g.str(gameAwayNameKeys...),
			homePts:  int(hp),
			awayPts:  int(ap),
			week:     week,
			neutral:  g.boolean(gameNeutralKeys...),
		})
	}
	return out
}

func (r *Run) resolveSide(idx *Index, id, name string) *Team {
	if id != "" {
		if canonical, ok := idx.ResolveID(id); ok {
			return r.teams[canonical]
		}
	}
	if name != "" {
		return r.teams[idx.ResolveName(name)]
	}
	return nil
}

// AttachGames resolves each raw game's participants against the index and
// appends a point-symmetric pair of GameResult entries, one per side. Games
// where either side fails to resolve to a rostered team are skipped entirely;
// source data routinely references opponents outside the roster.
func (r *Run) AttachGames(idx *Index, gamesRaw []Record) {
	for _, g := range parseGames(gamesRaw) {
		home := r.resolveSide(idx, g.homeID, g.homeName)
		away := r.resolveSide(idx, g.awayID, g.awayName)
		if home == nil || away == nil {
			continue
		}

		home.Games = append(home.Games, GameResult{
			Opponent:      away.Name,
			PointsFor:     g.homePts,
			PointsAgainst: g.awayPts,
			Week:          g.week,
			NeutralSite:   g.neutral,
			Home:          !g.neutral,
		})
		away.Games = append(away.Games, GameResult{
			Opponent:      home.Name,
			PointsFor:     g.awayPts,
			PointsAgainst: g.homePts,
			Week:          g.week,
			NeutralSite:   g.neutral,
			Away:          !g.neutral,
		})
	}
}
