package cfbdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	assert.Equal(t, "/teams?year=2024", expandPath("/teams?year={year}", 2024))
	assert.Equal(t, "/teams?season=2024", expandPath("/teams?season={season}", 2024))
	assert.Equal(t, "/conferences", expandPath("/conferences", 2024))
}

func TestEndpointsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, ep := range Endpoints {
		assert.False(t, seen[ep.Slug], "duplicate slug %s", ep.Slug)
		seen[ep.Slug] = true

		require.NotEmpty(t, ep.Candidates, "endpoint %s has no candidate paths", ep.Slug)
		for _, c := range ep.Candidates {
			assert.True(t, strings.HasPrefix(c, "/"), "candidate %q of %s should be a path", c, ep.Slug)
			expanded := expandPath(c, 2024)
			assert.NotContains(t, expanded, "{", "candidate %q of %s has an unexpanded placeholder", c, ep.Slug)
		}
	}

	// The slugs the ranking pipeline keys on must stay in the catalog.
	for _, slug := range []string{SlugTeams, SlugTeamsFBS, SlugGames, SlugSPRatings} {
		assert.True(t, seen[slug], "pipeline slug %s missing from catalog", slug)
	}
}
