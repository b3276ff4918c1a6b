// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// Resume is the root aggregate holding all content for one resume.
// Every section is optional; downstream consumers treat empty values as
// "omit this section", never as an error.
type Resume struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`

	// Reserved extension sections. They follow the same shape pattern as
	// the sections above but are not yet consumed by any template.
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
}

// PersonalInfo holds the contact header fields. All fields are optional.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// WorkExperience is a single job entry. Description holds one bullet per
// element; whitespace-only bullets are kept in storage and filtered only at
// render/export time. When Current is true the stored EndDate is never
// displayed.
type WorkExperience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

// SkillLevel is the proficiency scale for a skill.
type SkillLevel string

// Skill proficiency levels, ordered from weakest to strongest.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Rank returns the zero-based position of the level on the proficiency
// scale. Unknown levels rank as Intermediate.
func (l SkillLevel) Rank() int {
	switch l {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	case LevelExpert:
		return 3
	default:
		return 1
	}
}

// Skill is a single skill entry.
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// Project is a reserved extension entry.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Certification is a reserved extension entry.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Language is a reserved extension entry.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// NewWorkExperience creates a blank work entry with a freshly generated
// identifier. Identifiers are assigned exactly once and never reused.
func NewWorkExperience() WorkExperience {
	return WorkExperience{
		ID:          uuid.NewString(),
		Description: []string{},
	}
}

// NewEducation creates a blank education entry with a generated identifier.
func NewEducation() Education {
	return Education{ID: uuid.NewString()}
}

// NewSkill creates a blank skill entry with a generated identifier and the
// default level and category.
func NewSkill() Skill {
	return Skill{
		ID:       uuid.NewString(),
		Level:    LevelIntermediate,
		Category: "Technical",
	}
}

// Clone returns a deep copy of the resume. Exporters and the layout engine
// operate on clones so that concurrent edits cannot mutate a document
// mid-render.
func (r *Resume) Clone() *Resume {
	out := *r

	// Nil sections stay nil so clones compare equal to the original and
	// untouched sections keep serializing as null.
	if r.WorkExperience != nil {
		out.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
		for i, w := range r.WorkExperience {
			w.Description = append([]string(nil), w.Description...)
			out.WorkExperience[i] = w
		}
	}

	out.Education = append([]Education(nil), r.Education...)
	out.Skills = append([]Skill(nil), r.Skills...)

	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		for i, p := range r.Projects {
			p.Highlights = append([]string(nil), p.Highlights...)
			out.Projects[i] = p
		}
	}
	out.Certifications = append([]Certification(nil), r.Certifications...)
	out.Languages = append([]Language(nil), r.Languages...)

	return &out
}
