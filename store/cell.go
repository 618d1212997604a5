package store

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one named durable slot, holding a JSON-serialized value.
type Record struct {
	Key   string         `gorm:"primaryKey"`
	Value datatypes.JSON `gorm:"type:json"`
}

// Cell binds an in-memory value to a named slot in the records table. It
// initializes from the slot on construction and writes back on every
// Set. A slot that was never written, or whose stored bytes cannot be
// decoded, yields the caller-supplied default instead of an error.
//
// The mirror is updated before the row, so a Get in the same process
// observes a Set immediately; persistence failures are logged and never
// surfaced to callers.
type Cell[T any] struct {
	db     *gorm.DB
	key    string
	logger *zap.Logger

	mu    sync.RWMutex
	value T
}

func NewCell[T any](db *gorm.DB, logger *zap.Logger, key string, def T) *Cell[T] {
	c := &Cell[T]{db: db, key: key, logger: logger, value: def}

	var rec Record
	if err := db.First(&rec, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("failed to read slot, using default",
				zap.String("key", key), zap.Error(err))
		}
		return c
	}

	var v T
	if err := json.Unmarshal(rec.Value, &v); err != nil {
		logger.Warn("discarding undecodable slot value, using default",
			zap.String("key", key), zap.Error(err))
		return c
	}

	c.value = v
	return c
}

// Get returns the in-memory value. Callers must treat the result as
// read-only and go through Set (or a store's update operation) to
// change it.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value and persists it under the cell's key. The
// in-memory mirror is swapped first so readers never wait on the write.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("failed to encode slot value",
			zap.String("key", c.key), zap.Error(err))
		return
	}

	rec := Record{Key: c.key, Value: raw}
	err = c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		c.logger.Error("failed to persist slot value",
			zap.String("key", c.key), zap.Error(err))
	}
}
