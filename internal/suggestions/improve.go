package suggestions

import (
	"fmt"
	"strings"
)

// actionVerbs are the openers a strong experience bullet tends to lead with.
var actionVerbs = []string{"Led", "Managed", "Developed", "Implemented", "Achieved", "Improved", "Created", "Delivered"}

// ImproveSection rewrites a section's content with rule-based advice inlined.
// Content that already meets the rules is returned unchanged.
func ImproveSection(section, content string) string {
	switch section {
	case TypeSummary:
		if len(content) < 100 {
			return content + " Consider expanding this summary to 2-3 sentences that highlight your key achievements, years of experience, and unique value proposition to make a stronger first impression."
		}
	case TypeExperience:
		if !containsActionVerb(content) {
			return fmt.Sprintf("Consider starting with action verbs like %q, %q, or %q to make your accomplishments more impactful. Example: %q", "Led", "Developed", "Achieved", content)
		}
	}
	return content
}

func containsActionVerb(content string) bool {
	for _, verb := range actionVerbs {
		if strings.Contains(content, verb) {
			return true
		}
	}
	return false
}
