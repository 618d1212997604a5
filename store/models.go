package store

// Language selects which half of a LocalizedText is shown.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// LocalizedText always carries both languages; there is no
// missing-translation state.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In returns the text for the given language, defaulting to English.
func (t LocalizedText) In(lang Language) string {
	if lang == LangArabic {
		return t.Ar
	}
	return t.En
}

type Font string

const (
	FontRoboto Font = "roboto"
	FontLato   Font = "lato"
)

type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

type Theme struct {
	PrimaryColor   string     `json:"primaryColor"`
	SecondaryColor string     `json:"secondaryColor"`
	CardColor      string     `json:"cardColor"`
	Font           Font       `json:"font"`
	Appearance     Appearance `json:"appearance"`
}

type Service struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	Brief       LocalizedText `json:"brief"`
	Description LocalizedText `json:"description"`
	ImageURL    string        `json:"imageUrl"`
}

// Page is an editor-authored custom page. Content is raw markup stored
// exactly as typed; sanitization happens at render time in the site
// package. Slug uniqueness is not enforced here: when two pages share a
// slug, the view resolves the last one.
type Page struct {
	ID      string        `json:"id"`
	Slug    string        `json:"slug"`
	Title   LocalizedText `json:"title"`
	Content LocalizedText `json:"content"`
}

type Socials struct {
	Facebook  string `json:"facebook"`
	Linkedin  string `json:"linkedin"`
	X         string `json:"x"`
	Instagram string `json:"instagram"`
}

type HomeContent struct {
	HeroTitle    LocalizedText `json:"heroTitle"`
	HeroSubtitle LocalizedText `json:"heroSubtitle"`
	CTAButton    LocalizedText `json:"ctaButton"`
}

type ContactContent struct {
	Title   LocalizedText `json:"title"`
	Address LocalizedText `json:"address"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Socials Socials       `json:"socials"`
}

type WebsiteContent struct {
	Home    HomeContent    `json:"home"`
	Contact ContactContent `json:"contact"`
}

// WebsiteData is the single unit of persistence for site content. It is
// always fully populated; the store seeds a complete default document on
// first use.
type WebsiteData struct {
	Theme    Theme          `json:"theme"`
	Content  WebsiteContent `json:"content"`
	Services []Service      `json:"services"`
	Pages    []Page         `json:"pages"`
}

type Permission string

const (
	PermAdmin  Permission = "admin"
	PermEditor Permission = "editor"
)

// User credentials are compared as opaque strings; PasswordHash is not a
// cryptographic hash in this design.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"passwordHash"`
	Permissions  []Permission `json:"permissions"`
}

// Has reports whether the user holds the given permission.
func (u User) Has(p Permission) bool {
	for _, perm := range u.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}

// Session is the one logged-in identity, or nil when logged out. The
// token is the bearer value the browser presents in its cookie.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
