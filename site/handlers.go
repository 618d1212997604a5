// Package site is the view layer: it reads the stores, renders a
// language-selected projection of the document, and turns form posts
// into store operations. It holds no state of its own.
package site

import (
	"errors"
	"net/http"

	g "github.com/maragudk/gomponents"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"precision/store"
)

const (
	sessionCookieName = "precision_session"
	langCookieName    = "precision_lang"
)

// Handlers carries the store instances the view reads and mutates.
// Stores are constructed once in main and injected here; there are no
// package-level singletons.
type Handlers struct {
	site     *store.SiteStore
	identity *store.IdentityStore
	prefs    *store.PrefsStore
	logger   *zap.Logger
	sanitize *bluemonday.Policy
}

func NewHandlers(siteStore *store.SiteStore, identity *store.IdentityStore, prefs *store.PrefsStore, logger *zap.Logger) *Handlers {
	return &Handlers{
		site:     siteStore,
		identity: identity,
		prefs:    prefs,
		logger:   logger,
		sanitize: bluemonday.UGCPolicy(),
	}
}

func (h *Handlers) render(w http.ResponseWriter, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(w); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
	}
}

// language resolves the request's language: visitor cookie first, then
// the site default.
func (h *Handlers) language(r *http.Request) store.Language {
	if c, err := r.Cookie(langCookieName); err == nil {
		if l := store.Language(c.Value); l == store.LangEnglish || l == store.LangArabic {
			return l
		}
	}
	return h.prefs.Language()
}

// storeError maps store sentinel errors onto HTTP responses.
func (h *Handlers) storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrForbidden):
		http.Error(w, "You don't have permission to do that", http.StatusForbidden)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, store.ErrUsernameTaken):
		http.Error(w, "That username is already taken", http.StatusBadRequest)
	case errors.Is(err, store.ErrBadCredentials):
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
	default:
		h.logger.Error("store operation failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// localized collects the _en/_ar pair of a form field.
func localized(r *http.Request, field string) store.LocalizedText {
	return store.LocalizedText{
		En: r.FormValue(field + "_en"),
		Ar: r.FormValue(field + "_ar"),
	}
}
