package rankings

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

var (
	priorNameKeys   = []string{"team", "school", "name"}
	priorRatingKeys = []string{"rating", "sp", "overall"}
)

// priorIndex z-scores an optional preseason rating source across all rated
// teams. Ratings are keyed by lowercased team name; a missing or empty source
// yields an index that rates nobody.
type priorIndex struct {
	ratings map[string]float64
	mean    float64
	std     float64
}

func newPriorIndex(priorsRaw []Record) *priorIndex {
	ratings := make(map[string]float64)
	for _, rec := range priorsRaw {
		name := rec.str(priorNameKeys...)
		if name == "" {
			continue
		}
		rating, _ := rec.num(priorRatingKeys...)
		ratings[strings.ToLower(name)] = rating
	}
	if len(ratings) == 0 {
		return &priorIndex{}
	}

	vals := make([]float64, 0, len(ratings))
	for _, v := range ratings {
		vals = append(vals, v)
	}
	mean := stat.Mean(vals, nil)
	var ss float64
	for _, v := range vals {
		ss += (v - mean) * (v - mean)
	}
	// population deviation; a degenerate source falls back to unit scale
	std := math.Sqrt(ss / float64(len(vals)))
	if std == 0 {
		std = 1
	}
	return &priorIndex{ratings: ratings, mean: mean, std: std}
}

// get returns the team's scaled prior in [-0.25, 0.25] and whether the team
// is rated at all.
func (p *priorIndex) get(name string) (float64, bool) {
	if len(p.ratings) == 0 {
		return 0, false
	}
	raw, ok := p.ratings[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	z := clamp((raw-p.mean)/p.std, -2.5, 2.5)
	return z / 10, true
}
