package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/gridironlabs/cfbrank/internal/snapshot"
	"github.com/gridironlabs/cfbrank/internal/tools/publish"
	"github.com/gridironlabs/cfbrank/internal/tools/rank"
)

type publishCmd struct {
	Season int `arg:"" help:"Season (calendar year) to publish."`

	ProjectID string `help:"GCP project ID." env:"GCP_PROJECT" required:""`
	Force     bool   `help:"Overwrite an already-published ranking for the season."`
	DryRun    bool   `help:"Do not write to Firestore, but print to console instead."`
	PriorFile string `help:"Preseason rating file (.xlsx or .json) overriding the downloaded SP+ ratings."`
	NoPrior   bool   `help:"Rank without any preseason prior."`
}

func (a *publishCmd) Run(g *globalCmd) error {
	rctx := rank.NewContext(context.Background())
	rctx.Season = a.Season
	rctx.Store = snapshot.NewStore(g.DataDir)
	rctx.PriorFile = a.PriorFile
	rctx.NoPrior = a.NoPrior

	ranked, err := rank.Rank(rctx)
	if err != nil {
		return err
	}

	ctx := publish.NewContext(context.Background())
	ctx.Season = a.Season
	ctx.RunID = uuid.NewString()
	ctx.Force = a.Force
	ctx.DryRun = a.DryRun
	if !a.DryRun {
		ctx.FirestoreClient, err = fs.NewClient(ctx.Context, a.ProjectID)
		if err != nil {
			return err
		}
	}
	return publish.Publish(ctx, ranked)
}
