// Package compare estimates head-to-head win probabilities from composite
// scores using a normal model whose spread is fit to the published poll.
package compare

import (
	"fmt"
	"strings"

	"github.com/atgjack/prob"
	"gonum.org/v1/gonum/stat"

	"github.com/gridironlabs/cfbrank/internal/rankings"
)

// minSigma keeps the model sane when a poll has near-identical scores.
const minSigma = 0.01

// Comparison is the outcome of a single matchup query.
type Comparison struct {
	A        *rankings.Team `json:"a"`
	B        *rankings.Team `json:"b"`
	Diff     float64        `json:"scoreDiff"`
	WinProbA float64        `json:"winProbA"`
}

// GaussianScoreModel converts composite score differences into win
// probabilities with a zero-mean normal distribution. The deviation is the
// spread of scores across the published poll, so a given score gap means the
// same thing in a tightly-bunched season as a strung-out one.
type GaussianScoreModel struct {
	dist  prob.Normal
	teams map[string]*rankings.Team
}

// NewGaussianScoreModel fits a model to a published ranking.
func NewGaussianScoreModel(ranked []*rankings.Team) (*GaussianScoreModel, error) {
	if len(ranked) < 2 {
		return nil, fmt.Errorf("NewGaussianScoreModel: need at least 2 ranked teams, have %d", len(ranked))
	}
	scores := make([]float64, len(ranked))
	teams := make(map[string]*rankings.Team, len(ranked))
	for i, tm := range ranked {
		scores[i] = tm.Score
		teams[strings.ToLower(tm.Name)] = tm
	}
	sigma := stat.StdDev(scores, nil)
	if sigma < minSigma {
		sigma = minSigma
	}
	return &GaussianScoreModel{dist: prob.Normal{Mu: 0, Sigma: sigma}, teams: teams}, nil
}

// Predict returns the probability that a defeats b on a neutral field.
func (m *GaussianScoreModel) Predict(a, b *rankings.Team) (float64, float64) {
	diff := a.Score - b.Score
	return m.dist.Cdf(diff), diff
}

// Compare looks both teams up by name (case-insensitive) and predicts the
// matchup.
func (m *GaussianScoreModel) Compare(nameA, nameB string) (Comparison, error) {
	a, ok := m.teams[strings.ToLower(nameA)]
	if !ok {
		return Comparison{}, fmt.Errorf("Compare: team %q is not in the published ranking", nameA)
	}
	b, ok := m.teams[strings.ToLower(nameB)]
	if !ok {
		return Comparison{}, fmt.Errorf("Compare: team %q is not in the published ranking", nameB)
	}
	p, diff := m.Predict(a, b)
	return Comparison{A: a, B: b, Diff: diff, WinProbA: p}, nil
}

func (c Comparison) String() string {
	return fmt.Sprintf("#%d %s vs #%d %s: score diff %+0.4f, %s wins %0.1f%% of the time",
		c.A.Rank, c.A.Name, c.B.Rank, c.B.Name, c.Diff, c.A.Name, c.WinProbA*100)
}
