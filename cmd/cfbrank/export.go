package main

import (
	"context"
	"log"

	"github.com/gridironlabs/cfbrank/internal/snapshot"
	"github.com/gridironlabs/cfbrank/internal/tools/export"
	"github.com/gridironlabs/cfbrank/internal/tools/rank"
)

type exportCmd struct {
	Season int `arg:"" help:"Season (calendar year) to export."`

	Out       string `help:"Output workbook file name." default:"rankings.xlsx"`
	PriorFile string `help:"Preseason rating file (.xlsx or .json) overriding the downloaded SP+ ratings."`
	NoPrior   bool   `help:"Rank without any preseason prior."`
}

func (a *exportCmd) Run(g *globalCmd) error {
	ctx := rank.NewContext(context.Background())
	ctx.Season = a.Season
	ctx.Store = snapshot.NewStore(g.DataDir)
	ctx.PriorFile = a.PriorFile
	ctx.NoPrior = a.NoPrior

	ranked, err := rank.Rank(ctx)
	if err != nil {
		return err
	}
	if err := export.Export(ranked, a.Season, a.Out); err != nil {
		return err
	}
	log.Printf("Wrote %d teams to %s", len(ranked), a.Out)
	return nil
}
