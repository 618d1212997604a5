package site

import (
	"fmt"
	"sort"
	"strings"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"precision/constants"
	"precision/store"
	"precision/theme"
)

type layoutProps struct {
	Title       string
	Lang        store.Language
	Data        store.WebsiteData
	CurrentUser *store.User
}

func text(lang store.Language, en, ar string) string {
	return store.LocalizedText{En: en, Ar: ar}.In(lang)
}

func pageLayout(props layoutProps, children ...g.Node) g.Node {
	proj := theme.Project(props.Data, props.Lang)

	return Doctype(
		HTML(
			Lang(string(props.Lang)),
			g.Attr("dir", proj.TextDirection),
			g.If(proj.Dark, Class("dark")),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Roboto:wght@400;700&family=Lato:wght@400;700&display=swap")),
				StyleEl(g.Raw(themeCSS(proj))),
				TitleEl(g.Text(props.Title)),
			),
			Body(Class(proj.FontClass),
				navbarComponent(props),
				Main(Class("container"),
					g.Group(children),
				),
				footerComponent(props),
			),
		),
	)
}

func navbarComponent(props layoutProps) g.Node {
	lang := props.Lang
	otherLang, otherLabel := store.LangArabic, "العربية"
	if lang == store.LangArabic {
		otherLang, otherLabel = store.LangEnglish, "English"
	}

	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(text(lang, "Extreme Precision", "الدقة القصوى")))),
		),
		Div(Class("nav-links nav-right"),
			A(Href("/"), g.Text(text(lang, "Home", "الرئيسية"))),
			A(Href("/services"), g.Text(text(lang, "Services", "خدماتنا"))),
			g.Group(g.Map(props.Data.Pages, func(p store.Page) g.Node {
				return A(Href("/p/"+p.Slug), g.Text(p.Title.In(lang)))
			})),
			A(Href("/lang/"+string(otherLang)), Class("lang-toggle"), g.Text(otherLabel)),
			g.If(props.CurrentUser == nil,
				A(Href("/login"), g.Text(text(lang, "Login", "تسجيل الدخول"))),
			),
			g.If(props.CurrentUser != nil,
				Div(Class("row"),
					A(Href("/dashboard"), g.Text(text(lang, "Dashboard", "لوحة التحكم"))),
					Form(Method("post"), Action("/logout"), Class("inline-form"),
						Button(Type("submit"), Class("link-button"), g.Text(text(lang, "Logout", "تسجيل الخروج"))),
					),
				),
			),
		),
	)
}

func footerComponent(props layoutProps) g.Node {
	socials := props.Data.Content.Contact.Socials
	links := map[string]string{
		"Facebook":  socials.Facebook,
		"LinkedIn":  socials.Linkedin,
		"X":         socials.X,
		"Instagram": socials.Instagram,
	}
	names := make([]string, 0, len(links))
	for name, url := range links {
		if url != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return Footer(Class("footer"),
		Div(Class("socials"),
			g.Group(g.Map(names, func(name string) g.Node {
				return A(Href(links[name]), Target("_blank"), Rel("noopener"), g.Text(name))
			})),
		),
		P(Class("copyright"),
			A(Href(constants.PUBLIC_URL), g.Text(text(props.Lang, "© Extreme Precision. All rights reserved.", "© الدقة القصوى. جميع الحقوق محفوظة."))),
		),
	)
}

func themeCSS(proj theme.Projection) string {
	var b strings.Builder

	b.WriteString(":root{")
	names := make([]string, 0, len(proj.CSSVariables))
	for name := range proj.CSSVariables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s;", name, proj.CSSVariables[name])
	}
	b.WriteString("}\n")

	b.WriteString(`
body { margin: 0; background: hsl(var(--secondary-color)); color: #1e2a23; }
.dark body { background: #14181c; color: #e4e7ea; }
.font-roboto { font-family: 'Roboto', sans-serif; }
.font-lato { font-family: 'Lato', sans-serif; }
a { color: hsl(var(--primary)); }
.container { max-width: 960px; margin: 0 auto; padding: 1.5em 1em; }
.nav { display: flex; justify-content: space-between; align-items: center; padding: 1em; background: hsl(var(--card-color)); }
.nav-links a, .nav-links form { margin-inline-start: 1em; display: inline-block; }
.brand a { font-weight: 700; text-decoration: none; }
.hero { text-align: center; padding: 4em 1em; }
.hero h1 { color: hsl(var(--primary)); }
.cta { display: inline-block; background: hsl(var(--primary)); color: #fff; padding: 0.75em 1.5em; border-radius: 4px; text-decoration: none; }
.card { background: hsl(var(--card-color)); border-radius: 8px; padding: 1.5em; margin-bottom: 1.5em; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
.card img { max-width: 100%; border-radius: 4px; }
.service-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1.5em; }
.footer { text-align: center; padding: 2em 1em; }
.socials a { margin: 0 0.5em; }
.inline-form { display: inline; }
.link-button { background: none; border: none; color: hsl(var(--primary)); cursor: pointer; font: inherit; text-decoration: underline; }
form.stacked label { display: block; margin-top: 1em; font-weight: 700; }
form.stacked input, form.stacked textarea, form.stacked select { width: 100%; padding: 0.5em; box-sizing: border-box; }
form.stacked button { margin-top: 1.5em; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: start; padding: 0.5em; border-bottom: 1px solid rgba(0,0,0,0.1); }
.error { color: #b3261e; }
`)
	return b.String()
}

// formField is a labeled single-line input.
func formField(label, name, typ, value string) g.Node {
	return g.Group([]g.Node{
		Label(For(name), g.Text(label)),
		Input(ID(name), Name(name), Type(typ), Value(value)),
	})
}

// localizedFields renders the _en/_ar input pair for one logical field.
func localizedFields(label, name string, value store.LocalizedText) g.Node {
	return g.Group([]g.Node{
		formField(label+" (English)", name+"_en", "text", value.En),
		formField(label+" (Arabic)", name+"_ar", "text", value.Ar),
	})
}

// localizedAreas is the textarea variant for long-form content.
func localizedAreas(label, name string, value store.LocalizedText) g.Node {
	return g.Group([]g.Node{
		Label(For(name+"_en"), g.Text(label+" (English)")),
		Textarea(ID(name+"_en"), Name(name+"_en"), Rows("8"), g.Text(value.En)),
		Label(For(name+"_ar"), g.Text(label+" (Arabic)")),
		Textarea(ID(name+"_ar"), Name(name+"_ar"), Rows("8"), g.Text(value.Ar)),
	})
}
