package rank

import (
	"context"

	"github.com/gridironlabs/cfbrank/internal/snapshot"
)

type Context struct {
	context.Context

	Season int
	Store  *snapshot.Store

	// PriorFile overrides the stored sp-ratings dataset as the preseason
	// prior source. JSON and xlsx files are accepted; empty means use the
	// stored dataset if present.
	PriorFile string

	// NoPrior disables the preseason prior entirely.
	NoPrior bool

	// Top limits table output to the first N teams; zero prints everybody.
	Top int
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
