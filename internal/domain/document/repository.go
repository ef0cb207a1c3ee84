package document

import (
	"context"
	"errors"
)

var ErrSnapshotNotFound = errors.New("document snapshot not found")

// Repository persists whole-document snapshots. The document is saved
// and restored verbatim as one unit; no per-record queries.
type Repository interface {
	Save(ctx context.Context, doc *Document) error
	Load(ctx context.Context) (*Document, error)
}
