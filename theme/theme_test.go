package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"precision/store"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#ffffff", "0.0 0.0% 100.0%"},
		{"#000000", "0.0 0.0% 0.0%"},
		{"#ff0000", "0.0 100.0% 50.0%"},
		{"#00ff00", "120.0 100.0% 50.0%"},
		{"#0000ff", "240.0 100.0% 50.0%"},
		{"#fff", "0.0 0.0% 100.0%"},
		{"#f00", "0.0 100.0% 50.0%"},
		{"notacolor", "0.0 0.0% 0.0%"},
		{"", "0.0 0.0% 0.0%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HexToHSL(tt.hex), "hex %q", tt.hex)
	}
}

func TestProject(t *testing.T) {
	data := store.DefaultWebsiteData()

	t.Run("english is ltr", func(t *testing.T) {
		p := Project(data, store.LangEnglish)
		assert.Equal(t, "ltr", p.TextDirection)
		assert.Equal(t, "font-roboto", p.FontClass)
		assert.False(t, p.Dark)
	})

	t.Run("arabic is rtl", func(t *testing.T) {
		p := Project(data, store.LangArabic)
		assert.Equal(t, "rtl", p.TextDirection)
	})

	t.Run("css variables cover all three colors", func(t *testing.T) {
		p := Project(data, store.LangEnglish)
		assert.Contains(t, p.CSSVariables, "--primary")
		assert.Contains(t, p.CSSVariables, "--secondary-color")
		assert.Contains(t, p.CSSVariables, "--card-color")
		assert.Equal(t, HexToHSL("#ffffff"), p.CSSVariables["--card-color"])
	})

	t.Run("dark appearance and lato font", func(t *testing.T) {
		data.Theme.Appearance = store.AppearanceDark
		data.Theme.Font = store.FontLato
		p := Project(data, store.LangEnglish)
		assert.True(t, p.Dark)
		assert.Equal(t, "font-lato", p.FontClass)
	})
}
