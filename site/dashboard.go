package site

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"precision/constants"
	"precision/store"
)

// The dashboard is the editing surface for the document and the user
// list. Routes are auth-protected; the stores re-check permissions on
// every mutation, so these handlers only shape forms and map errors.

func dashNav(user *store.User) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-links"),
			A(Href("/dashboard"), g.Text("Overview")),
			A(Href("/dashboard/content"), g.Text("Content")),
			A(Href("/dashboard/services"), g.Text("Services")),
			A(Href("/dashboard/pages"), g.Text("Pages")),
			A(Href("/dashboard/settings"), g.Text("Settings")),
			g.If(store.CanManageUsers(user), A(Href("/dashboard/users"), g.Text("Users"))),
			A(Href("/dashboard/password"), g.Text("Password")),
		),
	)
}

func (h *Handlers) renderDash(w http.ResponseWriter, r *http.Request, title string, children ...g.Node) {
	p := h.props(r, title)
	body := append([]g.Node{dashNav(p.CurrentUser), H1(g.Text(title))}, children...)
	h.render(w, pageLayout(p, body...))
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := h.site.Get()
	user := currentUser(r)

	h.renderDash(w, r, "Dashboard",
		Div(Class("card"),
			P(g.Textf("Signed in as %s.", user.Username)),
			P(g.Textf("%d services, %d custom pages.", len(data.Services), len(data.Pages))),
		),
	)
}

// ManageContent edits the home hero and the contact block as one form.
func (h *Handlers) ManageContent(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		content := h.site.Get().Content
		h.renderDash(w, r, "Content",
			Form(Class("card stacked"), Method("post"), Action("/dashboard/content"),
				H2(g.Text("Home")),
				localizedFields("Hero title", "hero_title", content.Home.HeroTitle),
				localizedFields("Hero subtitle", "hero_subtitle", content.Home.HeroSubtitle),
				localizedFields("Call-to-action button", "cta_button", content.Home.CTAButton),
				H2(g.Text("Contact")),
				localizedFields("Section title", "contact_title", content.Contact.Title),
				localizedFields("Address", "address", content.Contact.Address),
				formField("Email", "email", "email", content.Contact.Email),
				formField("Phone", "phone", "text", content.Contact.Phone),
				H2(g.Text("Social links")),
				formField("Facebook", "facebook", "url", content.Contact.Socials.Facebook),
				formField("LinkedIn", "linkedin", "url", content.Contact.Socials.Linkedin),
				formField("X", "x", "url", content.Contact.Socials.X),
				formField("Instagram", "instagram", "url", content.Contact.Socials.Instagram),
				Button(Type("submit"), Class("cta"), g.Text("Save")),
			),
		)

	case http.MethodPost:
		err := h.site.Update(currentUser(r), func(d store.WebsiteData) store.WebsiteData {
			d.Content.Home.HeroTitle = localized(r, "hero_title")
			d.Content.Home.HeroSubtitle = localized(r, "hero_subtitle")
			d.Content.Home.CTAButton = localized(r, "cta_button")
			d.Content.Contact.Title = localized(r, "contact_title")
			d.Content.Contact.Address = localized(r, "address")
			d.Content.Contact.Email = r.FormValue("email")
			d.Content.Contact.Phone = r.FormValue("phone")
			d.Content.Contact.Socials = store.Socials{
				Facebook:  r.FormValue("facebook"),
				Linkedin:  r.FormValue("linkedin"),
				X:         r.FormValue("x"),
				Instagram: r.FormValue("instagram"),
			}
			return d
		})
		if err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard/content", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) ManageServices(w http.ResponseWriter, r *http.Request) {
	services := h.site.Get().Services
	h.renderDash(w, r, "Services",
		P(A(Href("/dashboard/services/new"), Class("cta"), g.Text("New service"))),
		Table(
			THead(Tr(Th(g.Text("Title")), Th(g.Text("Brief")), Th())),
			TBody(
				g.Group(g.Map(services, func(svc store.Service) g.Node {
					return Tr(
						Td(A(Href("/dashboard/services/"+svc.ID), g.Text(svc.Title.En))),
						Td(g.Text(svc.Brief.En)),
						Td(deleteForm("/dashboard/services/"+svc.ID+"/delete")),
					)
				})),
			),
		),
	)
}

func (h *Handlers) CreateService(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderDash(w, r, "New service", serviceForm(store.Service{}, "/dashboard/services/new"))

	case http.MethodPost:
		svc := serviceFromForm(r)
		svc.ID = uuid.NewString()
		err := h.site.Update(currentUser(r), func(d store.WebsiteData) store.WebsiteData {
			d.Services = append(slices.Clone(d.Services), svc)
			return d
		})
		if err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard/services", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) EditService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")
	services := h.site.Get().Services
	idx := slices.IndexFunc(services, func(s store.Service) bool { return s.ID == serviceID })
	if idx < 0 {
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.renderDash(w, r, "Edit service", serviceForm(services[idx], "/dashboard/services/"+serviceID))

	case http.MethodPost:
		svc := serviceFromForm(r)
		svc.ID = serviceID
		err := h.site.Update(currentUser(r), func(d store.WebsiteData) store.WebsiteData {
			next := slices.Clone(d.Services)
			for i := range next {
				if next[i].ID == serviceID {
					next[i] = svc
				}
			}
			d.Services = next
			return d
		})
		if err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard/services", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")
	err := h.site.Update(currentUser(r), func(d store.WebsiteData) store.WebsiteData {
		d.Services = slices.DeleteFunc(slices.Clone(d.Services), func(s store.Service) bool {
			return s.ID == serviceID
		})
		return d
	})
	if err != nil {
		h.storeError(w, err)
		return
	}
	http.Redirect(w, r, "/dashboard/services", http.StatusSeeOther)
}

func (h *Handlers) ManagePages(w http.ResponseWriter, r *http.Request) {
	pages := h.site.Get().Pages
	h.renderDash(w, r, "Pages",
		P(A(Href("/dashboard/pages/new"), Class("cta"), g.Text("New page"))),
		Table(
			THead(Tr(Th(g.Text("Title")), Th(g.Text("Slug")), Th())),
			TBody(
				g.Group(g.Map(pages, func(pg store.Page) g.Node {
					return Tr(
						Td(A(Href("/dashboard/pages/"+pg.ID), g.Text(pg.Title.En))),
						Td(g.Text(pg.Slug)),
						Td(deleteForm("/dashboard/pages/"+pg.ID+"/delete")),
					)
				})),
			),
		),
	)
}

func (h *Handlers) CreatePage(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderDash(w, r, "New page", pageForm(store.Page{}, "/dashboard/pages/new"))

	case http.MethodPost:
		pg := pageFromForm(r)
		if pageContentTooLong(pg) {
			http.Error(w, "Page content is too long", http.StatusBadRequest)
			return
		}
		pg.ID = uuid.NewString()
		if pg.Slug == "" {
			pg.Slug = slug.Make(pg.Title.En)
		}
		err := h.site.Update(currentUser(r), func(d store.WebsiteData) store.WebsiteData {
			d.Pages = append(slices.Clone(d.Pages), pg)
			return d
		})
		if err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard/pages", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) EditPage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	pages := h.site.Get().Pages
	idx := slices.IndexFunc(pages, func(p store.Page) bool { return p.ID == pageID })
	if idx < 0 {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.renderDash(w, r, "Edit page", pageForm(pages[idx], "/dashboard/pages/"+pageID))

	case http.MethodPost:
		pg := pageFromForm(r)
		if pageContentTooLong(pg) {
			http.Error(w, "Page content is too long", http.StatusBadRequest)
			return
		}
		pg.ID = pageID
		if pg.Slug == "" {
			pg.Slug = slug.Make(pg.Title.En)
		}
		err := h.site.Update(currentUser(r), func(d store.WebsiteData) store.WebsiteData {
			next := slices.Clone(d.Pages)
			for i := range next {
				if next[i].ID == pageID {
					next[i] = pg
				}
			}
			d.Pages = next
			return d
		})
		if err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard/pages", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) DeletePage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	err := h.site.Update(currentUser(r), func(d store.WebsiteData) store.WebsiteData {
		d.Pages = slices.DeleteFunc(slices.Clone(d.Pages), func(p store.Page) bool {
			return p.ID == pageID
		})
		return d
	})
	if err != nil {
		h.storeError(w, err)
		return
	}
	http.Redirect(w, r, "/dashboard/pages", http.StatusSeeOther)
}

// ManageSettings edits the theme.
func (h *Handlers) ManageSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		t := h.site.Get().Theme
		h.renderDash(w, r, "Settings",
			Form(Class("card stacked"), Method("post"), Action("/dashboard/settings"),
				formField("Primary color", "primaryColor", "color", t.PrimaryColor),
				formField("Secondary color", "secondaryColor", "color", t.SecondaryColor),
				formField("Card color", "cardColor", "color", t.CardColor),
				Label(For("font"), g.Text("Font")),
				Select(ID("font"), Name("font"),
					Option(Value("roboto"), g.Text("Roboto"), g.If(t.Font == store.FontRoboto, Selected())),
					Option(Value("lato"), g.Text("Lato"), g.If(t.Font == store.FontLato, Selected())),
				),
				Label(For("appearance"), g.Text("Appearance")),
				Select(ID("appearance"), Name("appearance"),
					Option(Value("light"), g.Text("Light"), g.If(t.Appearance == store.AppearanceLight, Selected())),
					Option(Value("dark"), g.Text("Dark"), g.If(t.Appearance == store.AppearanceDark, Selected())),
				),
				Button(Type("submit"), Class("cta"), g.Text("Save")),
			),
		)

	case http.MethodPost:
		font := store.Font(r.FormValue("font"))
		if font != store.FontRoboto && font != store.FontLato {
			font = store.FontRoboto
		}
		appearance := store.Appearance(r.FormValue("appearance"))
		if appearance != store.AppearanceLight && appearance != store.AppearanceDark {
			appearance = store.AppearanceLight
		}
		err := h.site.Update(currentUser(r), func(d store.WebsiteData) store.WebsiteData {
			d.Theme = store.Theme{
				PrimaryColor:   r.FormValue("primaryColor"),
				SecondaryColor: r.FormValue("secondaryColor"),
				CardColor:      r.FormValue("cardColor"),
				Font:           font,
				Appearance:     appearance,
			}
			return d
		})
		if err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard/settings", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) ManageUsers(w http.ResponseWriter, r *http.Request) {
	if !store.CanManageUsers(currentUser(r)) {
		http.Error(w, "You don't have permission to do that", http.StatusForbidden)
		return
	}
	users := h.identity.Users()
	h.renderDash(w, r, "Users",
		P(A(Href("/dashboard/users/new"), Class("cta"), g.Text("New user"))),
		Table(
			THead(Tr(Th(g.Text("Username")), Th(g.Text("Permissions")), Th())),
			TBody(
				g.Group(g.Map(users, func(u store.User) g.Node {
					return Tr(
						Td(A(Href("/dashboard/users/"+u.ID), g.Text(u.Username))),
						Td(g.Text(permissionList(u))),
						Td(
							A(Href("/dashboard/password?user="+u.ID), g.Text("Set password")),
							g.Text(" "),
							deleteForm("/dashboard/users/"+u.ID+"/delete"),
						),
					)
				})),
			),
		),
	)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderDash(w, r, "New user", userForm(store.User{}, "/dashboard/users/new", true))

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad form data", http.StatusBadRequest)
			return
		}
		candidate := store.User{
			Username:     r.FormValue("username"),
			PasswordHash: r.FormValue("password"),
			Permissions:  permissionsFromForm(r),
		}
		if err := h.identity.AddUser(currentUser(r), candidate); err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard/users", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) EditUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	users := h.identity.Users()
	idx := slices.IndexFunc(users, func(u store.User) bool { return u.ID == userID })
	if idx < 0 {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.renderDash(w, r, "Edit user", userForm(users[idx], "/dashboard/users/"+userID, false))

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad form data", http.StatusBadRequest)
			return
		}
		updated := users[idx]
		updated.Username = r.FormValue("username")
		updated.Permissions = permissionsFromForm(r)
		if err := h.identity.UpdateUser(currentUser(r), updated); err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard/users", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := h.identity.DeleteUser(currentUser(r), userID); err != nil {
		h.storeError(w, err)
		return
	}
	http.Redirect(w, r, "/dashboard/users", http.StatusSeeOther)
}

// ChangePassword sets a new password for the requesting user, or for
// another user when an admin follows the "Set password" link.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor := currentUser(r)

	switch r.Method {
	case http.MethodGet:
		targetID := r.URL.Query().Get("user")
		if targetID == "" {
			targetID = actor.ID
		}
		h.renderDash(w, r, "Change password",
			Form(Class("card stacked"), Method("post"), Action("/dashboard/password"),
				Input(Type("hidden"), Name("userID"), Value(targetID)),
				formField("New password", "password", "password", ""),
				Button(Type("submit"), Class("cta"), g.Text("Save")),
			),
		)

	case http.MethodPost:
		targetID := r.FormValue("userID")
		if targetID == "" {
			targetID = actor.ID
		}
		if err := h.identity.UpdatePassword(actor, targetID, r.FormValue("password")); err != nil {
			h.storeError(w, err)
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func serviceFromForm(r *http.Request) store.Service {
	return store.Service{
		Title:       localized(r, "title"),
		Brief:       localized(r, "brief"),
		Description: localized(r, "description"),
		ImageURL:    r.FormValue("imageUrl"),
	}
}

func serviceForm(svc store.Service, action string) g.Node {
	return Form(Class("card stacked"), Method("post"), Action(action),
		localizedFields("Title", "title", svc.Title),
		localizedFields("Brief", "brief", svc.Brief),
		localizedAreas("Description", "description", svc.Description),
		formField("Image URL", "imageUrl", "text", svc.ImageURL),
		Button(Type("submit"), Class("cta"), g.Text("Save")),
	)
}

func pageFromForm(r *http.Request) store.Page {
	return store.Page{
		Slug:    r.FormValue("slug"),
		Title:   localized(r, "title"),
		Content: localized(r, "content"),
	}
}

func pageContentTooLong(pg store.Page) bool {
	return len(pg.Content.En) > constants.MAX_PAGE_CONTENT_LEN ||
		len(pg.Content.Ar) > constants.MAX_PAGE_CONTENT_LEN
}

func pageForm(pg store.Page, action string) g.Node {
	return Form(Class("card stacked"), Method("post"), Action(action),
		localizedFields("Title", "title", pg.Title),
		formField("Slug (leave empty to derive from the English title)", "slug", "text", pg.Slug),
		localizedAreas("Content (HTML)", "content", pg.Content),
		Button(Type("submit"), Class("cta"), g.Text("Save")),
	)
}

func userForm(u store.User, action string, withPassword bool) g.Node {
	return Form(Class("card stacked"), Method("post"), Action(action),
		formField("Username", "username", "text", u.Username),
		g.If(withPassword, formField("Password", "password", "password", "")),
		Label(g.Text("Permissions")),
		Div(
			Label(
				Input(Type("checkbox"), Name("permissions"), Value("admin"), g.If(u.Has(store.PermAdmin), Checked())),
				g.Text(" admin"),
			),
			Label(
				Input(Type("checkbox"), Name("permissions"), Value("editor"), g.If(u.Has(store.PermEditor), Checked())),
				g.Text(" editor"),
			),
		),
		Button(Type("submit"), Class("cta"), g.Text("Save")),
	)
}

func permissionsFromForm(r *http.Request) []store.Permission {
	var perms []store.Permission
	for _, v := range r.Form["permissions"] {
		switch store.Permission(v) {
		case store.PermAdmin, store.PermEditor:
			perms = append(perms, store.Permission(v))
		}
	}
	return perms
}

func permissionList(u store.User) string {
	out := ""
	for i, p := range u.Permissions {
		if i > 0 {
			out += ", "
		}
		out += string(p)
	}
	return out
}

func deleteForm(action string) g.Node {
	return Form(Method("post"), Action(action), Class("inline-form"),
		Button(Type("submit"), Class("link-button"), g.Text("Delete")),
	)
}
