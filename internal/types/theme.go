//nolint:revive // types is a standard Go package name pattern
package types

// ColorTheme is a named triple of colors applied across templates. The three
// values are semantic (primary/secondary/accent); each template decides which
// visual role a color plays. Themes are rendering parameters only and are
// never persisted with a Resume.
type ColorTheme struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// BuiltinThemes is the static color theme catalog.
var BuiltinThemes = []ColorTheme{
	{ID: "magenta", Name: "Electric Magenta", Primary: "#FF6EC7", Secondary: "#8B5CF6", Accent: "#F472B6"},
	{ID: "purple", Name: "Royal Purple", Primary: "#A855F7", Secondary: "#7C3AED", Accent: "#C084FC"},
	{ID: "pink", Name: "Hot Pink", Primary: "#EC4899", Secondary: "#DB2777", Accent: "#F9A8D4"},
	{ID: "violet", Name: "Deep Violet", Primary: "#8B5CF6", Secondary: "#6D28D9", Accent: "#A78BFA"},
}

// DefaultTheme returns the catalog's first theme.
func DefaultTheme() ColorTheme {
	return BuiltinThemes[0]
}

// ThemeByID looks up a theme from the catalog. Unknown ids fall back to the
// default theme; theme selection never fails.
func ThemeByID(id string) ColorTheme {
	for _, t := range BuiltinThemes {
		if t.ID == id {
			return t
		}
	}
	return DefaultTheme()
}

// IsZero reports whether the theme carries no color values at all.
func (t ColorTheme) IsZero() bool {
	return t.Primary == "" && t.Secondary == "" && t.Accent == ""
}
