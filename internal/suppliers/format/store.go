package format

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// settingsKey is the fixed slot the serialized settings blob lives under.
const settingsKey = "supplier:format-settings"

// Store persists the settings blob in Redis. Reads never fail to the caller:
// any miss or storage error degrades to the compiled-in defaults. Writes are
// best effort and report success as a boolean.
type Store struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewStore creates a settings store over the given Redis client.
func NewStore(rdb *redis.Client, logger *slog.Logger) *Store {
	return &Store{rdb: rdb, logger: logger}
}

// Load returns the stored settings merged over the defaults. A missing key,
// a corrupt blob or a storage error all yield the defaults.
func (s *Store) Load(ctx context.Context) Settings {
	data, err := s.rdb.Get(ctx, settingsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("load format settings", slog.Any("error", err))
		}
		return Defaults()
	}
	return Merge(data)
}

// Save overwrites the stored settings blob. Storage errors are swallowed and
// reported as false.
func (s *Store) Save(ctx context.Context, settings Settings) bool {
	data, err := json.Marshal(settings)
	if err != nil {
		s.logger.Warn("marshal format settings", slog.Any("error", err))
		return false
	}
	if err := s.rdb.Set(ctx, settingsKey, data, 0).Err(); err != nil {
		s.logger.Warn("save format settings", slog.Any("error", err))
		return false
	}
	return true
}
