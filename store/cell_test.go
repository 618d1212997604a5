package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	return db, path
}

func TestCell_DefaultOnMissingSlot(t *testing.T) {
	db, _ := testDB(t)

	cell := NewCell(db, zap.NewNop(), "never-written", "fallback")
	assert.Equal(t, "fallback", cell.Get())
}

func TestCell_SetIsVisibleImmediately(t *testing.T) {
	db, _ := testDB(t)

	cell := NewCell(db, zap.NewNop(), "counter", 0)
	cell.Set(42)
	assert.Equal(t, 42, cell.Get())
}

func TestCell_RoundTripAcrossReload(t *testing.T) {
	db, path := testDB(t)

	type doc struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}
	want := doc{Name: "hello", Items: []string{"a", "b"}}

	cell := NewCell(db, zap.NewNop(), "doc", doc{})
	cell.Set(want)

	// simulate a reload: fresh connection, fresh cell, same slot
	Close(db, zap.NewNop())
	db2, err := Open(path)
	require.NoError(t, err)

	reloaded := NewCell(db2, zap.NewNop(), "doc", doc{})
	assert.Equal(t, want, reloaded.Get())
}

func TestCell_DefaultOnCorruptBytes(t *testing.T) {
	db, _ := testDB(t)

	require.NoError(t, db.Create(&Record{Key: "broken", Value: []byte("{not json")}).Error)

	cell := NewCell(db, zap.NewNop(), "broken", "fallback")
	assert.Equal(t, "fallback", cell.Get())
}

func TestCell_NilPointerDefault(t *testing.T) {
	db, path := testDB(t)

	cell := NewCell[*Session](db, zap.NewNop(), "session", nil)
	assert.Nil(t, cell.Get())

	cell.Set(&Session{Token: "tok"})
	cell.Set(nil)

	Close(db, zap.NewNop())
	db2, err := Open(path)
	require.NoError(t, err)

	reloaded := NewCell[*Session](db2, zap.NewNop(), "session", nil)
	assert.Nil(t, reloaded.Get())
}
