package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/pkg/logger"
)

const (
	snapshotCacheKey = "resumekit:document:autosave"
	snapshotCacheTTL = 7 * 24 * time.Hour
)

// SnapshotCache keeps the latest document state in Redis so an
// interrupted session can pick up where it left off. Autosave is best
// effort: a cache failure is logged and never surfaces to the editor.
type SnapshotCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewSnapshotCache(rdb *redis.Client, logger logger.Logger) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, logger: logger}
}

// Autosave stores the snapshot. Called from a store subscriber on every
// mutation.
func (c *SnapshotCache) Autosave(ctx context.Context, doc document.Document) {
	data, err := json.Marshal(doc)
	if err != nil {
		c.logger.Warn("Failed to marshal autosave snapshot", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, snapshotCacheKey, data, snapshotCacheTTL).Err(); err != nil {
		c.logger.Warn("Failed to autosave document snapshot", zap.Error(err))
	}
}

// Load returns the last autosaved document, or ErrSnapshotNotFound when
// nothing was saved (or the entry expired).
func (c *SnapshotCache) Load(ctx context.Context) (*document.Document, error) {
	data, err := c.rdb.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, document.ErrSnapshotNotFound
		}
		return nil, err
	}
	doc := &document.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Clear drops the autosave entry; used after an explicit reset.
func (c *SnapshotCache) Clear(ctx context.Context) {
	if err := c.rdb.Del(ctx, snapshotCacheKey).Err(); err != nil {
		c.logger.Warn("Failed to clear autosave snapshot", zap.Error(err))
	}
}
