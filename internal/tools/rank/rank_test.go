package rank

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/cfbrank/internal/snapshot"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	ctx := NewContext(context.Background())
	ctx.Season = 2024
	ctx.Store = snapshot.NewStore(t.TempDir())
	return ctx
}

func seed(t *testing.T, ctx *Context, slug, body string) {
	t.Helper()
	_, err := ctx.Store.Write(ctx.Season, slug, []byte(body))
	require.NoError(t, err)
}

func TestLoadPrefersFullRoster(t *testing.T) {
	ctx := testContext(t)
	seed(t, ctx, "teams", `[{"school":"Alpha"},{"school":"Patsy"}]`)
	seed(t, ctx, "teams-fbs", `[{"school":"Alpha"}]`)
	seed(t, ctx, "games-regular", `[]`)

	teams, games, priors, err := Load(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2, "the full roster should win over the FBS-only one")
	assert.Empty(t, games)
	assert.Empty(t, priors)
}

func TestLoadFallsBackToFBSRoster(t *testing.T) {
	ctx := testContext(t)
	seed(t, ctx, "teams-fbs", `[{"school":"Alpha"}]`)
	seed(t, ctx, "games-regular", `[]`)

	teams, _, _, err := Load(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestLoadMissingGamesIsAnError(t *testing.T) {
	ctx := testContext(t)
	seed(t, ctx, "teams", `[{"school":"Alpha"}]`)

	_, _, _, err := Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestLoadNoPriorSkipsRatings(t *testing.T) {
	ctx := testContext(t)
	ctx.NoPrior = true
	seed(t, ctx, "teams", `[{"school":"Alpha"}]`)
	seed(t, ctx, "games-regular", `[]`)
	seed(t, ctx, "sp-ratings", `[{"team":"Alpha","rating":20.0}]`)

	_, _, priors, err := Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, priors)
}

func TestLoadStoredRatings(t *testing.T) {
	ctx := testContext(t)
	seed(t, ctx, "teams", `[{"school":"Alpha"}]`)
	seed(t, ctx, "games-regular", `[]`)
	seed(t, ctx, "sp-ratings", `[{"team":"Alpha","rating":20.0}]`)

	_, _, priors, err := Load(ctx)
	require.NoError(t, err)
	require.Len(t, priors, 1)
	assert.Equal(t, "Alpha", priors[0]["team"])
}

func TestLoadPriorFileJSON(t *testing.T) {
	ctx := testContext(t)
	seed(t, ctx, "teams", `[{"school":"Alpha"}]`)
	seed(t, ctx, "games-regular", `[]`)

	path := filepath.Join(t.TempDir(), "prior.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"team":"Alpha","rating":12.5}]`), 0o644))
	ctx.PriorFile = path

	_, _, priors, err := Load(ctx)
	require.NoError(t, err)
	require.Len(t, priors, 1)
	assert.Equal(t, 12.5, priors[0]["rating"])
}

func TestRankEndToEnd(t *testing.T) {
	ctx := testContext(t)
	seed(t, ctx, "teams", `[
		{"school":"Alpha","classification":"fbs","conference":"North"},
		{"school":"Bravo","classification":"fbs","conference":"North"}
	]`)
	seed(t, ctx, "games-regular", `[
		{"home_team":"Alpha","away_team":"Bravo","home_points":28,"away_points":10,"week":1}
	]`)

	ranked, err := Rank(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Alpha", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 28, ranked[0].PF, "enrichment totals should be filled in")
}
