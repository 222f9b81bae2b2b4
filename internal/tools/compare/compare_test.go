package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/cfbrank/internal/rankings"
)

func testPoll() []*rankings.Team {
	return []*rankings.Team{
		{Name: "Alpha", Rank: 1, Score: 0.80},
		{Name: "Bravo", Rank: 2, Score: 0.60},
		{Name: "Charlie", Rank: 3, Score: 0.40},
		{Name: "Delta", Rank: 4, Score: 0.20},
	}
}

func TestCompareFavorsHigherScore(t *testing.T) {
	model, err := NewGaussianScoreModel(testPoll())
	require.NoError(t, err)

	cmp, err := model.Compare("Alpha", "Delta")
	require.NoError(t, err)
	assert.Greater(t, cmp.WinProbA, 0.5)
	assert.InDelta(t, 0.60, cmp.Diff, 1e-9)
}

func TestCompareSymmetry(t *testing.T) {
	model, err := NewGaussianScoreModel(testPoll())
	require.NoError(t, err)

	ab, err := model.Compare("Bravo", "Charlie")
	require.NoError(t, err)
	ba, err := model.Compare("Charlie", "Bravo")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ab.WinProbA+ba.WinProbA, 1e-9)
}

func TestCompareCaseInsensitiveLookup(t *testing.T) {
	model, err := NewGaussianScoreModel(testPoll())
	require.NoError(t, err)

	_, err = model.Compare("alpha", "DELTA")
	assert.NoError(t, err)
}

func TestCompareUnknownTeam(t *testing.T) {
	model, err := NewGaussianScoreModel(testPoll())
	require.NoError(t, err)

	_, err = model.Compare("Alpha", "Nowhere State")
	assert.Error(t, err)
}

func TestIdenticalScoresAreACoinFlip(t *testing.T) {
	poll := []*rankings.Team{
		{Name: "Alpha", Rank: 1, Score: 0.5},
		{Name: "Bravo", Rank: 2, Score: 0.5},
	}
	model, err := NewGaussianScoreModel(poll)
	require.NoError(t, err)

	cmp, err := model.Compare("Alpha", "Bravo")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cmp.WinProbA, 1e-9)
}

func TestModelNeedsTwoTeams(t *testing.T) {
	_, err := NewGaussianScoreModel([]*rankings.Team{{Name: "Alpha"}})
	assert.Error(t, err)
}
