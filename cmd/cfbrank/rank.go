package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/gridironlabs/cfbrank/internal/snapshot"
	"github.com/gridironlabs/cfbrank/internal/tools/rank"
)

type rankCmd struct {
	Season int `arg:"" help:"Season (calendar year) to rank."`

	Top       int    `help:"Number of teams to print. Non-positive prints the entire poll." default:"25"`
	PriorFile string `help:"Preseason rating file (.xlsx or .json) overriding the downloaded SP+ ratings."`
	NoPrior   bool   `help:"Rank without any preseason prior."`
	JSON      bool   `help:"Write the full ranking as JSON to stdout instead of a table."`
}

func (a *rankCmd) Run(g *globalCmd) error {
	ctx := rank.NewContext(context.Background())
	ctx.Season = a.Season
	ctx.Store = snapshot.NewStore(g.DataDir)
	ctx.PriorFile = a.PriorFile
	ctx.NoPrior = a.NoPrior
	ctx.Top = a.Top

	ranked, err := rank.Rank(ctx)
	if err != nil {
		return err
	}

	if a.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}
	rank.PrintTable(ranked, a.Top)
	return nil
}
