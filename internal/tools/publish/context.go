package publish

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

// Context carries everything Publish needs to run.
type Context struct {
	context.Context

	FirestoreClient *fs.Client
	Season          int
	RunID           string
	Force           bool
	DryRun          bool
}

// NewContext wraps a context.Context for publishing.
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
