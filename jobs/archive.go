package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const exportKeyPrefix = "supplier:export:"

// ExportArchive holds finished background export files in Redis until they
// are downloaded or expire.
type ExportArchive struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewExportArchive creates an archive with the given retention.
func NewExportArchive(rdb *redis.Client, ttl time.Duration) *ExportArchive {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ExportArchive{rdb: rdb, ttl: ttl}
}

// Put stores a finished export under its batch id.
func (a *ExportArchive) Put(ctx context.Context, batchID string, data []byte) error {
	return a.rdb.Set(ctx, exportKeyPrefix+batchID, data, a.ttl).Err()
}

// Get fetches an export by batch id. The boolean reports whether the export
// is ready yet.
func (a *ExportArchive) Get(ctx context.Context, batchID string) ([]byte, bool, error) {
	data, err := a.rdb.Get(ctx, exportKeyPrefix+batchID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
