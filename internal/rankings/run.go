package rankings

// Run holds the state of a single ranking invocation: every rostered team
// plus the global season context. A Run is built fresh per invocation and
// never shared; the engine holds no cross-run state.
type Run struct {
	order []string
	teams map[string]*Team

	// MeanGames is the mean number of attached game entries per rostered
	// team. Late flips once the season is far enough along for schedule
	// strength to be trusted at full weight.
	MeanGames float64
	Late      bool
}

func newRun(idx *Index) *Run {
	run := &Run{
		order: idx.order,
		teams: make(map[string]*Team, len(idx.order)),
	}
	for _, name := range idx.order {
		m := idx.meta[name]
		run.teams[name] = &Team{
			Name:           name,
			Conference:     m.conference,
			Classification: m.classification,
			Games:          make([]GameResult, 0),
		}
	}
	return run
}

// Team returns the rostered team by canonical name, or nil if unknown.
func (r *Run) Team(name string) *Team {
	return r.teams[name]
}

// Teams returns all rostered teams in canonical roster order.
func (r *Run) Teams() []*Team {
	out := make([]*Team, len(r.order))
	for i, name := range r.order {
		out[i] = r.teams[name]
	}
	return out
}

func (r *Run) totalAttached() int {
	n := 0
	for _, name := range r.order {
		n += len(r.teams[name].Games)
	}
	return n
}
