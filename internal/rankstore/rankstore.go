// Package rankstore persists published rankings to Firestore so downstream
// consumers (comparison views, conference aggregation, narrative overlays)
// can read them without re-running the engine.
package rankstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gridironlabs/cfbrank/internal/rankings"
)

// SEASONS_COLLECTION is the path to the seasons collection.
const SEASONS_COLLECTION = "seasons"

// RANKINGS_COLLECTION is the path to the rankings collection under a season.
const RANKINGS_COLLECTION = "rankings"

// TEAMS_COLLECTION is the path to the ranked teams under a ranking document.
const TEAMS_COLLECTION = "teams"

// LatestDoc is the well-known document name consumers read.
const LatestDoc = "latest"

// writeBatchSize bounds documents per transaction, well under the Firestore
// 500-write limit.
const writeBatchSize = 100

// Ranking is the header document for one published ranking run.
type Ranking struct {
	RunID     string    `firestore:"run_id"`
	Season    int       `firestore:"season"`
	Published time.Time `firestore:"published"`
	TeamCount int       `firestore:"team_count"`
}

// TeamRanking is one published team's document. The field set is the stable
// output contract of the engine; removing a field breaks external consumers.
type TeamRanking struct {
	Rank       int                   `firestore:"rank"`
	Name       string                `firestore:"name"`
	Conference string                `firestore:"conference"`
	Wins       int                   `firestore:"w"`
	Losses     int                   `firestore:"l"`
	Results    float64               `firestore:"results"`
	SOS        float64               `firestore:"sos"`
	SOSRank    int                   `firestore:"sos_rank"`
	Quality    float64               `firestore:"quality"`
	Recency    float64               `firestore:"recency"`
	Score      float64               `firestore:"score"`
	Games      []rankings.GameResult `firestore:"games"`
}

func newTeamRanking(t *rankings.Team) TeamRanking {
	return TeamRanking{
		Rank:       t.Rank,
		Name:       t.Name,
		Conference: t.Conference,
		Wins:       t.Wins,
		Losses:     t.Losses,
		Results:    t.Results,
		SOS:        t.SOS,
		SOSRank:    t.SOSRank,
		Quality:    t.Quality,
		Recency:    t.Recency,
		Score:      t.Score,
		Games:      t.Games,
	}
}

func latestRef(client *fs.Client, season int) *fs.DocumentRef {
	return client.Collection(SEASONS_COLLECTION).
		Doc(strconv.Itoa(season)).
		Collection(RANKINGS_COLLECTION).
		Doc(LatestDoc)
}

// Publish writes a ranking run under seasons/<year>/rankings/latest. If a
// ranking already exists for the season and force is false, Publish fails
// rather than overwriting it.
func Publish(ctx context.Context, client *fs.Client, season int, runID string, teams []*rankings.Team, force bool) error {
	ref := latestRef(client, season)

	_, err := ref.Get(ctx)
	if err == nil && !force {
		return fmt.Errorf("Publish: ranking for season %d already exists: use force to overwrite", season)
	}
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("Publish: failed to check existing ranking: %w", err)
	}

	header := Ranking{
		RunID:     runID,
		Season:    season,
		Published: time.Now().UTC(),
		TeamCount: len(teams),
	}
	if _, err := ref.Set(ctx, &header); err != nil {
		return fmt.Errorf("Publish: failed to write ranking header: %w", err)
	}

	teamCol := ref.Collection(TEAMS_COLLECTION)
	for ll := 0; ll < len(teams); ll += writeBatchSize {
		ul := min(ll+writeBatchSize, len(teams))
		err := client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
			for _, t := range teams[ll:ul] {
				doc := teamCol.Doc(strconv.Itoa(t.Rank))
				tr := newTeamRanking(t)
				if err := tx.Set(doc, &tr); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("Publish: failed to write teams %d-%d: %w", ll, ul, err)
		}
	}
	return nil
}

// GetLatest reads back the published ranking for a season in rank order.
func GetLatest(ctx context.Context, client *fs.Client, season int) (Ranking, []TeamRanking, error) {
	var header Ranking
	ref := latestRef(client, season)

	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return header, nil, fmt.Errorf("GetLatest: no ranking published for season %d", season)
	}
	if err != nil {
		return header, nil, fmt.Errorf("GetLatest: failed to get ranking header: %w", err)
	}
	if err := snap.DataTo(&header); err != nil {
		return header, nil, fmt.Errorf("GetLatest: failed to decode ranking header: %w", err)
	}

	teams := make([]TeamRanking, 0, header.TeamCount)
	iter := ref.Collection(TEAMS_COLLECTION).OrderBy("rank", fs.Asc).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return header, nil, fmt.Errorf("GetLatest: failed to iterate teams: %w", err)
		}
		var tr TeamRanking
		if err := doc.DataTo(&tr); err != nil {
			return header, nil, fmt.Errorf("GetLatest: failed to decode team: %w", err)
		}
		teams = append(teams, tr)
	}
	return header, teams, nil
}
