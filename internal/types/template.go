//nolint:revive // types is a standard Go package name pattern
package types

// TemplateDescriptor describes one visual composition strategy in the static
// template catalog. Descriptors are catalog metadata, not user data.
type TemplateDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// DefaultTemplateID is the template used when an unknown template id is
// requested. The layout engine never refuses to render.
const DefaultTemplateID = "corporate"

// BuiltinTemplates is the static template catalog.
var BuiltinTemplates = []TemplateDescriptor{
	{ID: "modern", Name: "Modern Professional", Description: "Clean design with colored header, perfect for tech and creative roles", Category: "modern"},
	{ID: "classic", Name: "Classic Minimalist", Description: "Traditional layout optimized for ATS systems", Category: "classic"},
	{ID: "creative", Name: "Creative Portfolio", Description: "Eye-catching design for designers and creative professionals", Category: "creative"},
	{ID: "executive", Name: "Executive Elite", Description: "Sophisticated layout for senior leadership positions", Category: "executive"},
	{ID: "tech", Name: "Tech Innovator", Description: "Modern tech-focused design with skill highlights", Category: "modern"},
	{ID: "compact", Name: "Compact Pro", Description: "Space-efficient design that fits more content", Category: "classic"},
	{ID: "artistic", Name: "Artistic Vision", Description: "Bold creative design for artists and designers", Category: "creative"},
	{ID: "corporate", Name: "Corporate Standard", Description: "Professional corporate design for business roles", Category: "executive"},
}

// TemplateCategories lists the filterable catalog categories.
var TemplateCategories = []string{"modern", "classic", "creative", "executive"}

// TemplateByID looks up a descriptor from the catalog. The second return
// value reports whether the id was found.
func TemplateByID(id string) (TemplateDescriptor, bool) {
	for _, t := range BuiltinTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return TemplateDescriptor{}, false
}

// TemplatesByCategory filters the catalog by category. An empty or "all"
// category returns the full catalog.
func TemplatesByCategory(category string) []TemplateDescriptor {
	if category == "" || category == "all" {
		return BuiltinTemplates
	}
	out := make([]TemplateDescriptor, 0, len(BuiltinTemplates))
	for _, t := range BuiltinTemplates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
