package cfbdata

import (
	"encoding/json"
	"fmt"
)

// Rating is one team's preseason rating from an external rating system. Only
// the team name and overall number matter to the ranking prior; everything
// else the endpoint returns is passed through untouched on disk.
type Rating struct {
	Team   string   `json:"team"`
	Rating *float64 `json:"rating"`
}

// ParseRatings unmarshals a ratings download.
func ParseRatings(body []byte) ([]Rating, error) {
	var ratings []Rating
	if err := json.Unmarshal(body, &ratings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ratings response body: %v", err)
	}
	return ratings, nil
}
