package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gridironlabs/cfbrank/internal/snapshot"
	"github.com/gridironlabs/cfbrank/internal/tools/download"
)

type downloadCmd struct {
	Season int `arg:"" help:"Season (calendar year) to download."`

	Force      bool   `help:"Overwrite already-downloaded data without asking."`
	NoProgress bool   `help:"Suppress the progress bar."`
	Bucket     string `help:"GCS bucket to mirror downloaded files to. If empty, no mirror is written."`
	Prefix     string `help:"Object prefix inside the mirror bucket." default:"cfbrank"`
}

func (a *downloadCmd) Run(g *globalCmd) error {
	if g.APIKey == "" {
		return fmt.Errorf("an API key is required: set --api-key or CFBD_API_KEY")
	}

	ctx := download.NewContext(context.Background())
	ctx.APIKey = g.APIKey
	ctx.BaseURL = g.BaseURL
	ctx.Season = a.Season
	ctx.Store = snapshot.NewStore(g.DataDir)
	ctx.Force = a.Force
	ctx.NoProgress = a.NoProgress

	if a.Bucket != "" {
		mirror, err := snapshot.NewMirror(ctx, a.Bucket, a.Prefix)
		if err != nil {
			return err
		}
		ctx.Mirror = mirror
	}

	summary, err := download.Download(ctx)
	if err != nil {
		return err
	}
	log.Printf("Run %s complete: %d downloaded, %d failed", summary.RunID, summary.Downloaded, summary.Failed)
	return nil
}
