package rank

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gridironlabs/cfbrank/internal/cfbdata"
	"github.com/gridironlabs/cfbrank/internal/rankings"
	"github.com/gridironlabs/cfbrank/internal/snapshot"
)

// Load reads the season's stored datasets and returns the raw inputs for the
// ranking engine. The full roster is preferred so lower-subdivision opponents
// resolve; the FBS-only roster is the fallback for seasons downloaded before
// the full roster endpoint existed. The prior source is optional and its
// absence is not an error.
func Load(ctx *Context) (teams, games, priors []rankings.Record, err error) {
	teams, err = ctx.Store.Records(ctx.Season, cfbdata.SlugTeams)
	if errors.Is(err, snapshot.ErrNotFound) {
		teams, err = ctx.Store.Records(ctx.Season, cfbdata.SlugTeamsFBS)
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Load: failed to load teams for %d: %w", ctx.Season, err)
	}

	games, err = ctx.Store.Records(ctx.Season, cfbdata.SlugGames)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Load: failed to load games for %d: %w", ctx.Season, err)
	}

	if ctx.NoPrior {
		return teams, games, nil, nil
	}
	priors, perr := loadPriors(ctx)
	if perr != nil {
		return nil, nil, nil, perr
	}
	return teams, games, priors, nil
}

func loadPriors(ctx *Context) ([]rankings.Record, error) {
	if ctx.PriorFile != "" {
		if strings.HasSuffix(strings.ToLower(ctx.PriorFile), ".xlsx") {
			return snapshot.ReadRatingsXLSX(ctx.PriorFile)
		}
		raw, err := os.ReadFile(ctx.PriorFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read prior file: %w", err)
		}
		return snapshot.DecodeRecords("prior", raw)
	}

	priors, err := ctx.Store.Records(ctx.Season, cfbdata.SlugSPRatings)
	if errors.Is(err, snapshot.ErrNotFound) {
		return nil, nil // no prior is fine
	}
	if err != nil {
		return nil, err
	}
	return priors, nil
}

// Rank loads the season and runs the full pipeline, returning the enriched
// published ranking.
func Rank(ctx *Context) ([]*rankings.Team, error) {
	teams, games, priors, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Ranking season %d: %d team records, %d game records, %d prior records", ctx.Season, len(teams), len(games), len(priors))

	ranked := rankings.Rank(teams, games, priors)
	rankings.Enrich(ranked)
	return ranked, nil
}
