package download

import (
	"context"

	"github.com/gridironlabs/cfbrank/internal/snapshot"
)

type Context struct {
	context.Context

	APIKey     string
	BaseURL    string
	Season     int
	Store      *snapshot.Store
	Mirror     *snapshot.Mirror
	Force      bool
	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
