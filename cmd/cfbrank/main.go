package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type globalCmd struct {
	DataDir string `help:"Directory holding downloaded season data." default:"data"`
	APIKey  string `help:"CollegeFootballData API key. If empty, the environment variable CFBD_API_KEY will be used." env:"CFBD_API_KEY"`
	BaseURL string `help:"Override the CollegeFootballData API root."`
}

var CLI struct {
	globalCmd

	Download downloadCmd `cmd:"" help:"Download a season's datasets from the CollegeFootballData API."`
	Rank     rankCmd     `cmd:"" help:"Compute and print a ranking from downloaded data."`
	Export   exportCmd   `cmd:"" help:"Export a season's ranking to an Excel workbook."`
	Compare  compareCmd  `cmd:"" help:"Estimate a head-to-head win probability from the ranking."`
	Publish  publishCmd  `cmd:"" help:"Publish a season's ranking to Firestore."`
	Serve    serveCmd    `cmd:"" help:"Serve the rankings HTTP API."`
}

func main() {
	// A .env file is a convenience for local runs; its absence is not an error.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("cfbrank"),
		kong.Description("CFBRank: a command-line tool for downloading college football data and computing rankings."))
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
