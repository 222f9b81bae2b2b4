package download

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
	progressbar "github.com/schollz/progressbar/v3"

	"github.com/gridironlabs/cfbrank/internal/cfbdata"
)

// endpointPause keeps the client polite between dataset requests.
const endpointPause = 150 * time.Millisecond

// Result records one successfully stored dataset.
type Result struct {
	Slug    string `json:"slug"`
	Path    string `json:"pathTried"`
	SavedTo string `json:"savedTo"`
	Count   int    `json:"count"`
}

// Failure records one dataset that could not be downloaded. A partial season
// is still usable, so failures are reported alongside results rather than
// aborting the whole download.
type Failure struct {
	Slug    string `json:"slug"`
	Path    string `json:"pathTried,omitempty"`
	Message string `json:"message"`
}

// Summary is the full report of one download run.
type Summary struct {
	RunID      string    `json:"runId"`
	Year       int       `json:"year"`
	BaseURL    string    `json:"baseUrl"`
	Results    []Result  `json:"results"`
	Errors     []Failure `json:"errors"`
	Downloaded int       `json:"downloaded"`
	Failed     int       `json:"failed"`
}

// Download fetches every season dataset and persists it through the store,
// optionally mirroring to Cloud Storage. An existing season is only
// overwritten after confirmation unless Force is set.
func Download(ctx *Context) (*Summary, error) {
	if ctx.BaseURL == "" {
		ctx.BaseURL = cfbdata.DefaultBaseURL
	}
	if ctx.Store.HasSeason(ctx.Season) && !ctx.Force {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Season %d already has downloaded data in %s. Overwrite?", ctx.Season, ctx.Store.Root()),
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return nil, fmt.Errorf("Download: failed to confirm overwrite: %w", err)
		}
		if !overwrite {
			return nil, fmt.Errorf("Download: refusing to overwrite season %d", ctx.Season)
		}
	}

	summary := &Summary{
		RunID:   uuid.NewString(),
		Year:    ctx.Season,
		BaseURL: ctx.BaseURL,
		Results: make([]Result, 0, len(cfbdata.Endpoints)),
		Errors:  make([]Failure, 0),
	}

	bar := progressbar.NewOptions(len(cfbdata.Endpoints),
		progressbar.OptionSetDescription(fmt.Sprintf("season %d", ctx.Season)),
		progressbar.OptionSetVisibility(!ctx.NoProgress),
	)
	httpClient := http.DefaultClient

	for i, ep := range cfbdata.Endpoints {
		if i > 0 {
			select {
			case <-time.After(endpointPause):
			case <-ctx.Done():
				return summary, ctx.Err()
			}
		}

		body, path, err := cfbdata.Fetch(ctx, httpClient, ctx.BaseURL, ctx.APIKey, ep, ctx.Season)
		if err != nil {
			summary.Errors = append(summary.Errors, Failure{Slug: ep.Slug, Path: path, Message: err.Error()})
			bar.Add(1)
			continue
		}

		savedTo, err := ctx.Store.Write(ctx.Season, ep.Slug, body)
		if err != nil {
			return summary, fmt.Errorf("Download: failed to store %s: %w", ep.Slug, err)
		}
		if ctx.Mirror != nil {
			if err := ctx.Mirror.Upload(ctx, ctx.Season, ep.Slug, body); err != nil {
				return summary, fmt.Errorf("Download: failed to mirror %s: %w", ep.Slug, err)
			}
		}

		summary.Results = append(summary.Results, Result{
			Slug:    ep.Slug,
			Path:    path,
			SavedTo: savedTo,
			Count:   describeCount(ep.Slug, body),
		})
		bar.Add(1)
	}
	bar.Finish()

	summary.Downloaded = len(summary.Results)
	summary.Failed = len(summary.Errors)
	log.Printf("Downloaded %d datasets for season %d (%d failed)", summary.Downloaded, ctx.Season, summary.Failed)
	return summary, nil
}

// describeCount reports how many records a dataset holds, using the typed
// parsers for the datasets the ranking pipeline depends on so schema breakage
// shows up at download time.
func describeCount(slug string, body []byte) int {
	switch slug {
	case cfbdata.SlugTeams, cfbdata.SlugTeamsFBS:
		teams, err := cfbdata.ParseTeams(body)
		if err != nil {
			log.Printf("Warning: %s does not parse as teams: %v", slug, err)
			break
		}
		return len(teams)
	case cfbdata.SlugGames, "games-postseason":
		games, err := cfbdata.ParseGames(body)
		if err != nil {
			log.Printf("Warning: %s does not parse as games: %v", slug, err)
			break
		}
		log.Printf("Loaded %d games (%d scored) from %s", len(games), cfbdata.CountScored(games), slug)
		return len(games)
	case cfbdata.SlugSPRatings:
		ratings, err := cfbdata.ParseRatings(body)
		if err != nil {
			log.Printf("Warning: %s does not parse as ratings: %v", slug, err)
			break
		}
		return len(ratings)
	}

	var arr []any
	if err := json.Unmarshal(body, &arr); err != nil {
		return 1
	}
	return len(arr)
}
