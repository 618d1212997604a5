package site

import (
	"errors"
	"net/http"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"precision/store"
)

// Login renders the sign-in form on GET and attempts the login on POST.
// A failed attempt re-renders the form with an error; the session is
// untouched.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if currentUser(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		h.renderLogin(w, r, "")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	token, err := h.identity.Login(username, password)
	if err != nil {
		if errors.Is(err, store.ErrBadCredentials) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			h.renderLogin(w, r, text(h.language(r), "Invalid username or password.", "اسم المستخدم أو كلمة المرور غير صحيحة."))
			return
		}
		h.storeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout clears the session and the cookie. Idempotent.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.identity.Logout()
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) renderLogin(w http.ResponseWriter, r *http.Request, errMsg string) {
	p := h.props(r, text(h.language(r), "Login", "تسجيل الدخول"))
	h.render(w, pageLayout(p,
		Form(Class("card stacked"), Method("post"), Action("/login"),
			H1(g.Text(text(p.Lang, "Sign in", "تسجيل الدخول"))),
			g.If(errMsg != "", P(Class("error"), g.Text(errMsg))),
			formField(text(p.Lang, "Username", "اسم المستخدم"), "username", "text", ""),
			formField(text(p.Lang, "Password", "كلمة المرور"), "password", "password", ""),
			Button(Type("submit"), Class("cta"), g.Text(text(p.Lang, "Sign in", "تسجيل الدخول"))),
		),
	))
}
