package site

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"precision/constants"
	"precision/store"
)

func testHandlers(t *testing.T) (*Handlers, *chi.Mux) {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "site.db"))
	require.NoError(t, err)

	logger := zap.NewNop()
	h := NewHandlers(
		store.NewSiteStore(db, logger),
		store.NewIdentityStore(db, logger),
		store.NewPrefsStore(db, logger),
		logger,
	)

	r := chi.NewRouter()
	r.Use(h.TryPutUserInContext)
	r.Get("/", h.Home)
	r.Get("/services", h.Services)
	r.Get("/services/{serviceID}", h.ServiceDetail)
	r.Get("/p/{pageSlug}", h.CustomPage)
	r.Get("/lang/{lang}", h.SetLanguage)
	r.HandleFunc("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.With(h.AuthProtected).Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.Dashboard)
		r.HandleFunc("/pages/new", h.CreatePage)
	})
	r.NotFound(h.NotFound)
	return h, r
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicPages(t *testing.T) {
	_, r := testHandlers(t)

	t.Run("home shows hero and services preview", func(t *testing.T) {
		w := get(r, "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Expert Accounting Services")
		assert.Contains(t, w.Body.String(), "Bookkeeping")
	})

	t.Run("footer links the canonical site", func(t *testing.T) {
		w := get(r, "/")
		assert.Contains(t, w.Body.String(), constants.PUBLIC_URL)
	})

	t.Run("services lists every service", func(t *testing.T) {
		w := get(r, "/services")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Succession Planning")
	})

	t.Run("service detail resolves by id", func(t *testing.T) {
		w := get(r, "/services/service-2")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Tax Preparation")
	})

	t.Run("unknown service is 404", func(t *testing.T) {
		w := get(r, "/services/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("custom page by slug", func(t *testing.T) {
		w := get(r, "/p/about-us")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Our Story")
	})

	t.Run("contact page form addresses the firm's mailbox", func(t *testing.T) {
		w := get(r, "/p/contact-us")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `action="mailto:contact@extremeprecision.com"`)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		w := get(r, "/p/missing")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLanguageSelection(t *testing.T) {
	_, r := testHandlers(t)

	t.Run("defaults to english ltr", func(t *testing.T) {
		w := get(r, "/")
		assert.Contains(t, w.Body.String(), `dir="ltr"`)
	})

	t.Run("arabic cookie flips direction and content", func(t *testing.T) {
		w := get(r, "/", &http.Cookie{Name: langCookieName, Value: "ar"})
		assert.Contains(t, w.Body.String(), `dir="rtl"`)
		assert.Contains(t, w.Body.String(), "خدمات محاسبة متخصصة")
	})

	t.Run("lang route sets cookie and redirects", func(t *testing.T) {
		w := get(r, "/lang/ar")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, "ar", cookies[0].Value)
	})

	t.Run("unsupported language rejected", func(t *testing.T) {
		w := get(r, "/lang/fr")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginFlow(t *testing.T) {
	_, r := testHandlers(t)

	t.Run("dashboard redirects anonymous visitors", func(t *testing.T) {
		w := get(r, "/dashboard")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("bad credentials rejected", func(t *testing.T) {
		w := postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("good credentials set the session cookie", func(t *testing.T) {
		w := postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"admin"}})
		require.Equal(t, http.StatusSeeOther, w.Code)

		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		session := cookies[0]
		assert.Equal(t, sessionCookieName, session.Name)

		dash := get(r, "/dashboard", session)
		assert.Equal(t, http.StatusOK, dash.Code)
		assert.Contains(t, dash.Body.String(), "Signed in as admin")

		// logout invalidates the token
		postForm(r, "/logout", nil, session)
		after := get(r, "/dashboard", session)
		assert.Equal(t, http.StatusSeeOther, after.Code)
	})
}

func TestCreatePageEnforcesContentLimit(t *testing.T) {
	h, r := testHandlers(t)

	w := postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"admin"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	session := w.Result().Cookies()[0]

	t.Run("oversized content rejected", func(t *testing.T) {
		long := strings.Repeat("a", constants.MAX_PAGE_CONTENT_LEN+1)
		w := postForm(r, "/dashboard/pages/new", url.Values{
			"title_en":   {"Too Big"},
			"content_en": {long},
		}, session)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, h.site.Get().Pages, 2)
	})

	t.Run("content at the limit accepted", func(t *testing.T) {
		ok := strings.Repeat("a", constants.MAX_PAGE_CONTENT_LEN)
		w := postForm(r, "/dashboard/pages/new", url.Values{
			"title_en":   {"Just Right"},
			"content_en": {ok},
		}, session)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Len(t, h.site.Get().Pages, 3)
	})
}

func TestCustomPageSanitizesContent(t *testing.T) {
	h, r := testHandlers(t)
	admin := &store.User{ID: "a", Permissions: []store.Permission{store.PermAdmin}}

	require.NoError(t, h.site.Update(admin, func(d store.WebsiteData) store.WebsiteData {
		d.Pages = append(d.Pages[:len(d.Pages):len(d.Pages)], store.Page{
			ID:   "p-evil",
			Slug: "evil",
			Title: store.LocalizedText{En: "Evil", Ar: "شرير"},
			Content: store.LocalizedText{
				En: `<p>fine</p><script>alert("xss")</script>`,
				Ar: `<p>جيد</p>`,
			},
		})
		return d
	}))

	w := get(r, "/p/evil")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<p>fine</p>")
	assert.NotContains(t, w.Body.String(), "<script>")
}

func TestCustomPageLastSlugWins(t *testing.T) {
	h, r := testHandlers(t)
	admin := &store.User{ID: "a", Permissions: []store.Permission{store.PermAdmin}}

	require.NoError(t, h.site.Update(admin, func(d store.WebsiteData) store.WebsiteData {
		d.Pages = append(d.Pages[:len(d.Pages):len(d.Pages)], store.Page{
			ID:      "p-shadow",
			Slug:    "about-us",
			Title:   store.LocalizedText{En: "Shadow", Ar: "ظل"},
			Content: store.LocalizedText{En: "<p>The newer page.</p>", Ar: "<p>الصفحة الأحدث.</p>"},
		})
		return d
	}))

	w := get(r, "/p/about-us")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The newer page.")
	assert.NotContains(t, w.Body.String(), "Our Story")
}
