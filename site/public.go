package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"precision/constants"
	"precision/store"
)

func (h *Handlers) props(r *http.Request, title string) layoutProps {
	return layoutProps{
		Title:       title,
		Lang:        h.language(r),
		Data:        h.site.Get(),
		CurrentUser: currentUser(r),
	}
}

// Home renders the hero, a preview of the first services and the
// contact block.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	p := h.props(r, constants.APP_NAME)
	lang := p.Lang
	home := p.Data.Content.Home

	preview := p.Data.Services
	if len(preview) > constants.MAX_SERVICES_ON_HOME {
		preview = preview[:constants.MAX_SERVICES_ON_HOME]
	}

	h.render(w, pageLayout(p,
		Section(Class("hero"),
			H1(g.Text(home.HeroTitle.In(lang))),
			P(g.Text(home.HeroSubtitle.In(lang))),
			A(Href("/services"), Class("cta"), g.Text(home.CTAButton.In(lang))),
		),
		Section(Class("service-grid"),
			g.Group(g.Map(preview, func(svc store.Service) g.Node {
				return serviceCard(svc, lang)
			})),
		),
		contactSection(p),
	))
}

// Services lists every service in display order.
func (h *Handlers) Services(w http.ResponseWriter, r *http.Request) {
	p := h.props(r, text(h.language(r), "Services", "خدماتنا"))

	h.render(w, pageLayout(p,
		H1(g.Text(text(p.Lang, "Our Services", "خدماتنا"))),
		Section(Class("service-grid"),
			g.Group(g.Map(p.Data.Services, func(svc store.Service) g.Node {
				return serviceCard(svc, p.Lang)
			})),
		),
	))
}

func (h *Handlers) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")
	p := h.props(r, constants.APP_NAME)

	var svc *store.Service
	for i := range p.Data.Services {
		if p.Data.Services[i].ID == serviceID {
			svc = &p.Data.Services[i]
			break
		}
	}
	if svc == nil {
		h.NotFound(w, r)
		return
	}

	p.Title = svc.Title.In(p.Lang)
	h.render(w, pageLayout(p,
		Div(Class("card"),
			Img(Src(svc.ImageURL), Alt(svc.Title.In(p.Lang))),
			H1(g.Text(svc.Title.In(p.Lang))),
			P(g.Text(svc.Description.In(p.Lang))),
		),
	))
}

// CustomPage resolves an editor-authored page by slug. When two pages
// share a slug the last registered one wins. Content is sanitized here,
// at the render boundary; the store keeps it exactly as typed.
func (h *Handlers) CustomPage(w http.ResponseWriter, r *http.Request) {
	pageSlug := chi.URLParam(r, "pageSlug")
	p := h.props(r, constants.APP_NAME)

	var page *store.Page
	for i := range p.Data.Pages {
		if p.Data.Pages[i].Slug == pageSlug {
			page = &p.Data.Pages[i]
		}
	}
	if page == nil {
		h.NotFound(w, r)
		return
	}

	p.Title = page.Title.In(p.Lang)
	children := []g.Node{
		H1(g.Text(page.Title.In(p.Lang))),
		Div(Class("card"),
			g.Raw(h.sanitize.Sanitize(page.Content.In(p.Lang))),
		),
	}
	if page.Slug == "contact-us" {
		children = append(children, contactSection(p), contactForm(p.Lang, p.Data.Content.Contact.Email))
	}

	h.render(w, pageLayout(p, children...))
}

// SetLanguage stores the chosen language as both the visitor's cookie
// and the site default, then bounces back to the referring page.
func (h *Handlers) SetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := store.Language(chi.URLParam(r, "lang"))
	if lang != store.LangEnglish && lang != store.LangArabic {
		http.Error(w, "Unsupported language", http.StatusBadRequest)
		return
	}

	h.prefs.SetLanguage(lang)
	http.SetCookie(w, &http.Cookie{
		Name:  langCookieName,
		Value: string(lang),
		Path:  "/",
	})

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	p := h.props(r, text(h.language(r), "Page not found", "الصفحة غير موجودة"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.render(w, pageLayout(p,
		Section(Class("hero"),
			H1(g.Text(text(p.Lang, "Page not found.", "الصفحة غير موجودة."))),
			A(Href("/"), g.Text(text(p.Lang, "Back to Home", "العودة إلى الرئيسية"))),
		),
	))
}

func serviceCard(svc store.Service, lang store.Language) g.Node {
	return Div(Class("card"),
		Img(Src(svc.ImageURL), Alt(svc.Title.In(lang))),
		H2(g.Text(svc.Title.In(lang))),
		P(g.Text(svc.Brief.In(lang))),
		A(Href("/services/"+svc.ID), g.Text(text(lang, "Learn more", "اعرف المزيد"))),
	)
}

func contactSection(p layoutProps) g.Node {
	contact := p.Data.Content.Contact
	lang := p.Lang
	return Section(Class("card"),
		H2(g.Text(contact.Title.In(lang))),
		P(g.Text(contact.Address.In(lang))),
		P(A(Href("mailto:"+contact.Email), g.Text(contact.Email))),
		P(g.Text(contact.Phone)),
	)
}

// contactForm renders the message form. Submissions go straight to the
// firm's mailbox; the site itself stores nothing.
func contactForm(lang store.Language, email string) g.Node {
	return Form(Class("card stacked"), Method("get"), Action("mailto:"+email),
		H2(g.Text(text(lang, "Send us a message", "أرسل لنا رسالة"))),
		formField(text(lang, "Your name", "اسمك"), "name", "text", ""),
		formField(text(lang, "Your email", "بريدك الإلكتروني"), "email", "email", ""),
		Label(For("message"), g.Text(text(lang, "Message", "الرسالة"))),
		Textarea(ID("message"), Name("message"), Rows("5")),
		Button(Type("submit"), Class("cta"), g.Text(text(lang, "Send", "إرسال"))),
	)
}
