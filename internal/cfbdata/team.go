package cfbdata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Team is the typed shape of one upstream roster record, used to validate and
// summarize downloads. The ranking engine itself consumes the stored raw JSON
// through its own tolerant field resolution.
type Team struct {
	ID             int64    `json:"id"`
	School         string   `json:"school"`
	Mascot         *string  `json:"mascot"`
	Abbreviation   *string  `json:"abbreviation"`
	AltName1       *string  `json:"alt_name1"`
	AltName2       *string  `json:"alt_name2"`
	AltName3       *string  `json:"alt_name3"`
	Conference     *string  `json:"conference"`
	Classification *string  `json:"classification"`
	Logos          []string `json:"logos"`
}

// ParseTeams unmarshals a roster download.
func ParseTeams(body []byte) ([]Team, error) {
	var teams []Team
	if err := json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal teams response body: %v", err)
	}
	return teams, nil
}

// Classified reports whether the team belongs to the given subdivision,
// case-insensitively matching the upstream tag.
func (t Team) Classified(classification string) bool {
	return t.Classification != nil && strings.EqualFold(*t.Classification, classification)
}
