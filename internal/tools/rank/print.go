package rank

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gridironlabs/cfbrank/internal/rankings"
)

// PrintTable renders the published ranking to stdout. A non-positive top
// prints the entire poll.
func PrintTable(ranked []*rankings.Team, top int) {
	if top <= 0 || top > len(ranked) {
		top = len(ranked)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Rank", "Team", "Conf", "W", "L", "Score", "Results", "SOS", "SOS Rank", "Quality", "Off%", "Def%"})
	for _, tm := range ranked[:top] {
		t.AppendRow(table.Row{
			tm.Rank,
			tm.Name,
			tm.Conference,
			tm.Wins,
			tm.Losses,
			fmt.Sprintf("%0.4f", tm.Score),
			fmt.Sprintf("%0.3f", tm.Results),
			fmt.Sprintf("%0.3f", tm.SOS),
			tm.SOSRank,
			fmt.Sprintf("%0.3f", tm.Quality),
			fmt.Sprintf("%0.2f", tm.OffPct),
			fmt.Sprintf("%0.2f", tm.DefPct),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
