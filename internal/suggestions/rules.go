// Package suggestions analyzes a resume and produces improvement advice.
//
// The engine is a deterministic rule list behind an interface-shaped boundary:
// callers hand in a resume and receive advice items, nothing else. The
// analysis never fails outward; if a rule panics the engine degrades to a
// single advisory item.
package suggestions

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mwhite/resume-studio/internal/types"
)

// Suggestion categories.
const (
	TypeSummary    = "summary"
	TypeExperience = "experience"
	TypeSkills     = "skills"
	TypeGeneral    = "general"
)

// Suggestion priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is one piece of improvement advice.
type Suggestion struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// Thresholds used by the analysis rules.
const (
	minSummaryLength = 50
	minBulletLength  = 20
	minSkillCount    = 5
)

// Engine evaluates the rule list against a resume.
type Engine struct {
	logger *log.Logger
}

// NewEngine creates a suggestion engine. A nil logger falls back to the
// package default.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{logger: logger}
}

// Analyze returns advice for the resume. It always returns at least one
// suggestion: a resume with no findings earns a positive confirmation, and an
// internal failure degrades to a single advisory item.
func (e *Engine) Analyze(r *types.Resume) (out []Suggestion) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("suggestion analysis failed", "panic", rec)
			out = []Suggestion{{
				Type:       TypeGeneral,
				Title:      "Analysis Unavailable",
				Suggestion: "Unable to generate suggestions at this time. Please ensure all sections are filled out and try again.",
				Priority:   PriorityLow,
			}}
		}
	}()

	var found []Suggestion

	if len(r.Summary) < minSummaryLength {
		found = append(found, Suggestion{
			Type:       TypeSummary,
			Title:      "Professional Summary Missing or Too Short",
			Suggestion: "Add a compelling 2-3 sentence professional summary that highlights your key achievements, years of experience, and unique value proposition. This helps recruiters quickly understand your profile.",
			Priority:   PriorityHigh,
		})
	}

	if len(r.WorkExperience) == 0 {
		found = append(found, Suggestion{
			Type:       TypeExperience,
			Title:      "Add Work Experience",
			Suggestion: "Include your work experience with specific achievements and quantifiable results. Use action verbs and focus on impact rather than just responsibilities.",
			Priority:   PriorityHigh,
		})
	} else if hasWeakDescriptions(r.WorkExperience) {
		found = append(found, Suggestion{
			Type:       TypeExperience,
			Title:      "Strengthen Experience Descriptions",
			Suggestion: "Use the STAR method (Situation, Task, Action, Result) to describe your achievements. Include specific metrics and quantifiable results whenever possible.",
			Priority:   PriorityMedium,
		})
	}

	if len(r.Skills) < minSkillCount {
		found = append(found, Suggestion{
			Type:       TypeSkills,
			Title:      "Add More Relevant Skills",
			Suggestion: "Include both technical and soft skills relevant to your target role. Aim for 8-12 skills including programming languages, tools, frameworks, and soft skills.",
			Priority:   PriorityMedium,
		})
	}

	if missing := missingContactFields(r.PersonalInfo); len(missing) > 0 {
		found = append(found, Suggestion{
			Type:       TypeGeneral,
			Title:      "Complete Contact Information",
			Suggestion: "Add missing contact details: " + strings.Join(missing, ", ") + ". Complete contact information makes it easy for employers to reach you.",
			Priority:   PriorityHigh,
		})
	}

	if r.PersonalInfo.LinkedIn == "" && r.PersonalInfo.GitHub == "" {
		found = append(found, Suggestion{
			Type:       TypeGeneral,
			Title:      "Add Professional Profiles",
			Suggestion: "Include your LinkedIn profile and GitHub (for technical roles) to showcase your professional network and projects.",
			Priority:   PriorityLow,
		})
	}

	if len(r.Education) == 0 {
		found = append(found, Suggestion{
			Type:       TypeGeneral,
			Title:      "Add Education Information",
			Suggestion: "Include your educational background, including degree, institution, and graduation year. This information is often required by employers.",
			Priority:   PriorityMedium,
		})
	}

	if len(found) == 0 {
		found = append(found, Suggestion{
			Type:       TypeGeneral,
			Title:      "Great Resume Foundation!",
			Suggestion: "Your resume has all the essential elements. Consider adding specific metrics to your achievements, ensuring consistent formatting, and tailoring content for each job application.",
			Priority:   PriorityLow,
		})
	}

	return found
}

// hasWeakDescriptions reports whether any entry has no bullets or a bullet
// too short to carry a concrete achievement.
func hasWeakDescriptions(entries []types.WorkExperience) bool {
	for _, entry := range entries {
		if len(entry.Description) == 0 {
			return true
		}
		for _, bullet := range entry.Description {
			if len(bullet) < minBulletLength {
				return true
			}
		}
	}
	return false
}

func missingContactFields(p types.PersonalInfo) []string {
	var missing []string
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	if p.Location == "" {
		missing = append(missing, "location")
	}
	return missing
}
