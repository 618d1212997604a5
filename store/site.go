package store

import (
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const websiteDataKey = "websiteData"

// SiteStore owns the single WebsiteData aggregate. Every edit goes
// through Update as a whole-document replace; there is no partial-field
// path, so a mutator is responsible for producing a complete aggregate
// (cloning any slice it touches).
type SiteStore struct {
	cell   *Cell[WebsiteData]
	logger *zap.Logger

	// serializes Update: concurrent mutators must never clone the same
	// base document, or one edit would silently vanish
	mu sync.Mutex
}

func NewSiteStore(db *gorm.DB, logger *zap.Logger) *SiteStore {
	return &SiteStore{
		cell:   NewCell(db, logger, websiteDataKey, DefaultWebsiteData()),
		logger: logger,
	}
}

// Get returns the current aggregate. Callers must not mutate slices
// reachable from the result in place.
func (s *SiteStore) Get() WebsiteData {
	return s.cell.Get()
}

// Update applies mutate to the current aggregate and swaps in its
// result. The swap is atomic: readers see the old document or the new
// one, never a half-applied edit. Returns ErrForbidden when actor may
// not edit content.
func (s *SiteStore) Update(actor *User, mutate func(WebsiteData) WebsiteData) error {
	if !CanEditContent(actor) {
		return ErrForbidden
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(mutate(s.cell.Get()))
	return nil
}
