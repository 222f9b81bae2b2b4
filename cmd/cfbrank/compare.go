package main

import (
	"context"
	"fmt"

	"github.com/gridironlabs/cfbrank/internal/snapshot"
	"github.com/gridironlabs/cfbrank/internal/tools/compare"
	"github.com/gridironlabs/cfbrank/internal/tools/rank"
)

type compareCmd struct {
	Season int    `arg:"" help:"Season (calendar year) to rank."`
	TeamA  string `arg:"" help:"First team name."`
	TeamB  string `arg:"" help:"Second team name."`

	NoPrior bool `help:"Rank without any preseason prior."`
}

func (a *compareCmd) Run(g *globalCmd) error {
	ctx := rank.NewContext(context.Background())
	ctx.Season = a.Season
	ctx.Store = snapshot.NewStore(g.DataDir)
	ctx.NoPrior = a.NoPrior

	ranked, err := rank.Rank(ctx)
	if err != nil {
		return err
	}
	model, err := compare.NewGaussianScoreModel(ranked)
	if err != nil {
		return err
	}
	cmp, err := model.Compare(a.TeamA, a.TeamB)
	if err != nil {
		return err
	}
	fmt.Println(cmp)
	return nil
}
