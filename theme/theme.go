package theme

import (
	"embed"
	"strings"
)

// Name identifies a Swagger UI color theme layered on top of the base
// stylesheet. The zero value selects the base stylesheet only.
type Name string

const (
	Dracula       Name = "dracula"
	Gruvbox       Name = "gruvbox"
	NordDark      Name = "nord-dark"
	OneDark       Name = "one-dark"
	Sepia         Name = "sepia"
	UniversalDark Name = "universal-dark"
	Monokai       Name = "monokai"
)

//go:embed css/*.css
var assets embed.FS

var (
	baseCSS  = mustRead("base")
	overlays = map[Name]string{
		Dracula:       mustRead(string(Dracula)),
		Gruvbox:       mustRead(string(Gruvbox)),
		NordDark:      mustRead(string(NordDark)),
		OneDark:       mustRead(string(OneDark)),
		Sepia:         mustRead(string(Sepia)),
		UniversalDark: mustRead(string(UniversalDark)),
		Monokai:       mustRead(string(Monokai)),
	}
)

func mustRead(name string) string {
	data, err := assets.ReadFile("css/" + name + ".css")
	if err != nil {
		panic("theme: missing embedded stylesheet " + name)
	}
	return strings.TrimRight(string(data), "\n")
}

// Names returns every known theme in declaration order.
func Names() []Name {
	return []Name{Dracula, Gruvbox, NordDark, OneDark, Sepia, UniversalDark, Monokai}
}

// Valid reports whether n is one of the known themes.
func (n Name) Valid() bool {
	_, ok := overlays[n]
	return ok
}

// Base returns the stylesheet shared by every theme.
func Base() string {
	return baseCSS
}

// Overlay returns the theme-specific stylesheet for n.
func Overlay(n Name) (string, bool) {
	css, ok := overlays[n]
	return css, ok
}

// CSS composes the stylesheet for n: the base stylesheet, followed by a
// newline and the overlay when n is a known theme. Unknown and empty names
// yield the base stylesheet unchanged.
func CSS(n Name) string {
	overlay, ok := overlays[n]
	if !ok {
		return baseCSS
	}
	return baseCSS + "\n" + overlay
}
