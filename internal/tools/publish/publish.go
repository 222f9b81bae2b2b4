// Package publish pushes a completed ranking run to Firestore.
package publish

import (
	"fmt"
	"log"

	"github.com/gridironlabs/cfbrank/internal/rankings"
	"github.com/gridironlabs/cfbrank/internal/rankstore"
)

// Publish writes the ranking to seasons/<year>/rankings/latest. DryRun logs
// what would be written and stops short of touching Firestore.
func Publish(ctx *Context, ranked []*rankings.Team) error {
	if len(ranked) == 0 {
		return fmt.Errorf("Publish: refusing to publish an empty ranking for season %d", ctx.Season)
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would publish %d teams for season %d (run %s)", len(ranked), ctx.Season, ctx.RunID)
		for _, tm := range ranked[:min(len(ranked), 10)] {
			log.Printf("DRY RUN: #%d %s (%d-%d) %0.4f", tm.Rank, tm.Name, tm.Wins, tm.Losses, tm.Score)
		}
		return nil
	}

	if err := rankstore.Publish(ctx, ctx.FirestoreClient, ctx.Season, ctx.RunID, ranked, ctx.Force); err != nil {
		return fmt.Errorf("Publish: %w", err)
	}
	log.Printf("Published %d teams for season %d (run %s)", len(ranked), ctx.Season, ctx.RunID)
	return nil
}
