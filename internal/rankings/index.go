package rankings

import "strings"

// Candidate key lists for tolerant field resolution, tried in order.
var (
	teamNameKeys  = []string{"school", "team", "name", "displayName", "teamName"}
	teamIDKeys    = []string{"id", "teamId", "schoolId", "cfbd_id"}
	teamClassKeys = []string{"classification", "division", "subdivision"}
	teamConfKeys  = []string{"conference", "conf", "conference_abbreviation"}
	teamAliasKeys = []string{"school", "team", "name", "displayName", "abbreviation", "alt_name1", "alt_name2", "alt_name3", "mascot"}
)

type teamMeta struct {
	conference     string
	classification string
}

// Index resolves raw team and game identities to canonical team names.
// Roster order (order of first appearance of each canonical name) is the
// iteration order for the entire pipeline; nothing downstream may depend on
// Go map iteration.
type Index struct {
	order  []string
	byID   map[string]string
	byName map[string]string
	meta   map[string]teamMeta
}

// BuildIndex parses raw team records into canonical identities. Records with
// no resolvable name are dropped without error; upstream rosters are known to
// carry junk rows. Alias collisions are resolved first-wins.
func BuildIndex(teamsRaw []Record) *Index {
	idx := &Index{
		byID:   make(map[string]string),
		byName: make(map[string]string),
		meta:   make(map[string]teamMeta),
	}

	for _, t := range teamsRaw {
		canonical := t.str(teamNameKeys...)
		if canonical == "" {
			continue
		}

		classification := "unknown"
		for _, k := range teamClassKeys {
			if v := t.str(k); v != "" {
				classification = strings.ToLower(v)
				break
			}
		}
		conference := "Unknown"
		for _, k := range teamConfKeys {
			if v := t.str(k); v != "" {
				conference = v
				break
			}
		}

		if _, seen := idx.meta[canonical]; !seen {
			idx.order = append(idx.order, canonical)
		}
		idx.meta[canonical] = teamMeta{conference: conference, classification: classification}

		if id := t.str(teamIDKeys...); id != "" {
			if _, taken := idx.byID[id]; !taken {
				idx.byID[id] = canonical
			}
		}

		for _, k := range teamAliasKeys {
			alias := strings.ToLower(t.str(k))
			if alias == "" {
				continue
			}
			if _, taken := idx.byName[alias]; !taken {
				idx.byName[alias] = canonical
			}
		}
	}

	return idx
}

// Len returns the number of distinct canonical teams in the index.
func (idx *Index) Len() int {
	return len(idx.order)
}

// ResolveID looks up a canonical name by upstream numeric ID.
func (idx *Index) ResolveID(id string) (string, bool) {
	name, ok := idx.byID[id]
	return name, ok
}

// ResolveName looks up a canonical name by case-insensitive alias. If the
// alias is unknown the raw name is returned verbatim: a "ghost" opponent that
// later fails the roster check and causes the game to be skipped.
func (idx *Index) ResolveName(name string) string {
	if canonical, ok := idx.byName[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}
