// Package theme derives view-level effects from the website document
// and the active language. It is a pure projection with no state.
package theme

import (
	"fmt"
	"strconv"

	"precision/store"
)

// Projection is everything the layout needs to style a page.
type Projection struct {
	// CSSVariables maps custom property names to HSL triples ("H S% L%"),
	// suitable for hsl(var(--primary)) style usage.
	CSSVariables  map[string]string
	TextDirection string
	FontClass     string
	Dark          bool
}

// Project converts the document's theme and the language into CSS
// variables, text direction and a font class. Deterministic and safe to
// call on every render.
func Project(data store.WebsiteData, lang store.Language) Projection {
	dir := "ltr"
	if lang == store.LangArabic {
		dir = "rtl"
	}
	return Projection{
		CSSVariables: map[string]string{
			"--primary":         HexToHSL(data.Theme.PrimaryColor),
			"--secondary-color": HexToHSL(data.Theme.SecondaryColor),
			"--card-color":      HexToHSL(data.Theme.CardColor),
		},
		TextDirection: dir,
		FontClass:     "font-" + string(data.Theme.Font),
		Dark:          data.Theme.Appearance == store.AppearanceDark,
	}
}

// HexToHSL converts a "#rgb" or "#rrggbb" color to an "H S% L%" triple.
// Unparseable input degrades to black rather than failing.
func HexToHSL(hex string) string {
	var r, g, b float64
	switch len(hex) {
	case 4:
		r = hexByte(string([]byte{hex[1], hex[1]}))
		g = hexByte(string([]byte{hex[2], hex[2]}))
		b = hexByte(string([]byte{hex[3], hex[3]}))
	case 7:
		r = hexByte(hex[1:3])
		g = hexByte(hex[3:5])
		b = hexByte(hex[5:7])
	}

	r /= 255
	g /= 255
	b /= 255

	max := max3(r, g, b)
	min := min3(r, g, b)

	var h, s float64
	l := (max + min) / 2

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return fmt.Sprintf("%.1f %.1f%% %.1f%%", h*360, s*100, l*100)
}

func hexByte(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0
	}
	return float64(v)
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
