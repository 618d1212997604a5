package store

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const languageKey = "language"

// PrefsStore holds the site-default language. Per-visitor overrides
// live in a cookie at the HTTP layer; this slot is what a fresh visitor
// sees.
type PrefsStore struct {
	cell *Cell[Language]
}

func NewPrefsStore(db *gorm.DB, logger *zap.Logger) *PrefsStore {
	return &PrefsStore{cell: NewCell(db, logger, languageKey, LangEnglish)}
}

func (s *PrefsStore) Language() Language {
	return s.cell.Get()
}

// SetLanguage stores the default language, ignoring values outside the
// fixed two-member set.
func (s *PrefsStore) SetLanguage(lang Language) {
	if lang != LangEnglish && lang != LangArabic {
		return
	}
	s.cell.Set(lang)
}
