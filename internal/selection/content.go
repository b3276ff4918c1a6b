// Package selection builds the normalized renderable content for a resume.
//
// All templates and all exporters consume the Content value produced here, so
// section visibility, bullet filtering, and date formatting are decided in
// exactly one place. Templates differ only in how they arrange this content,
// never in what they select.
package selection

import (
	"strings"
	"time"

	"github.com/mwhite/resume-studio/internal/types"
)

// PresentToken is the literal shown in place of an end date for ongoing
// positions, regardless of what the stored end date holds.
const PresentToken = "Present"

// Content is the normalized "what to show" view of a resume.
type Content struct {
	Header    Header
	Summary   string
	Work      []WorkView
	Education []EducationView
	Skills    []SkillView
}

// Header is the contact block. Fields absent from the resume are empty here
// and must be skipped individually by every consumer.
type Header struct {
	Name     string
	Initials string
	Email    string
	Phone    string
	Location string
	Website  string
	LinkedIn string
	GitHub   string
}

// WorkView is one work entry with display-ready fields and filtered bullets.
type WorkView struct {
	Position  string
	Company   string
	Location  string
	DateRange string
	Bullets   []string
}

// EducationView is one education entry with display-ready fields.
type EducationView struct {
	Title       string // "Degree in Field", degrading gracefully when parts are missing
	Institution string
	GPA         string
	Honors      string
	DateRange   string
	EndDate     string
}

// SkillView is one skill entry with its 5-dot meter fill precomputed.
type SkillView struct {
	Name     string
	Level    types.SkillLevel
	Category string
	Dots     int // filled dots out of 5
}

// Build derives the renderable content from a resume. It is pure and total:
// any valid resume value, including the zero value, produces a Content.
func Build(r *types.Resume) Content {
	c := Content{
		Header:  buildHeader(r.PersonalInfo),
		Summary: strings.TrimSpace(r.Summary),
	}

	for _, w := range r.WorkExperience {
		c.Work = append(c.Work, WorkView{
			Position:  w.Position,
			Company:   w.Company,
			Location:  w.Location,
			DateRange: FormatRange(w.StartDate, w.EndDate, w.Current),
			Bullets:   FilterBullets(w.Description),
		})
	}

	for _, e := range r.Education {
		c.Education = append(c.Education, EducationView{
			Title:       eduTitle(e),
			Institution: e.Institution,
			GPA:         e.GPA,
			Honors:      e.Honors,
			DateRange:   FormatRange(e.StartDate, e.EndDate, false),
			EndDate:     FormatDate(e.EndDate),
		})
	}

	for _, s := range r.Skills {
		c.Skills = append(c.Skills, SkillView{
			Name:     s.Name,
			Level:    s.Level,
			Category: s.Category,
			Dots:     s.Level.Rank() + 2,
		})
	}

	return c
}

func buildHeader(p types.PersonalInfo) Header {
	return Header{
		Name:     strings.TrimSpace(p.FullName),
		Initials: initials(p.FullName),
		Email:    strings.TrimSpace(p.Email),
		Phone:    strings.TrimSpace(p.Phone),
		Location: strings.TrimSpace(p.Location),
		Website:  strings.TrimSpace(p.Website),
		LinkedIn: strings.TrimSpace(p.LinkedIn),
		GitHub:   strings.TrimSpace(p.GitHub),
	}
}

// initials returns the uppercased first letter of each name word.
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// eduTitle composes "Degree in Field", dropping whichever part is missing.
func eduTitle(e types.Education) string {
	degree := strings.TrimSpace(e.Degree)
	field := strings.TrimSpace(e.Field)
	switch {
	case degree != "" && field != "":
		return degree + " in " + field
	case degree != "":
		return degree
	default:
		return field
	}
}

// HasSummary reports whether the summary section should render.
func (c Content) HasSummary() bool { return c.Summary != "" }

// HasWork reports whether the work experience section should render.
func (c Content) HasWork() bool { return len(c.Work) > 0 }

// HasEducation reports whether the education section should render.
func (c Content) HasEducation() bool { return len(c.Education) > 0 }

// HasSkills reports whether the skills section should render.
func (c Content) HasSkills() bool { return len(c.Skills) > 0 }

// ContactLine joins the present contact fields with " | ". Absent fields are
// omitted individually; the line never contains a blank separator.
func (c Content) ContactLine() string {
	return JoinPresent(" | ", c.Header.Email, c.Header.Phone, c.Header.Location, c.Header.LinkedIn, c.Header.GitHub)
}

// SkillNames returns the comma-joined skill names line.
func (c Content) SkillNames() string {
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// TitleLine joins the entry's non-empty position/company/location with " | ".
func (w WorkView) TitleLine() string {
	return JoinPresent(" | ", w.Position, w.Company, w.Location)
}

// TitleLine joins the entry's non-empty title/institution with " | ".
func (e EducationView) TitleLine() string {
	return JoinPresent(" | ", e.Title, e.Institution)
}

// FilterBullets drops lines that are empty after trimming. Stored bullets are
// never modified; filtering happens only on the render/export path.
func FilterBullets(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinPresent joins the non-empty parts with sep.
func JoinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}

// dateLayouts are the accepted stored date formats, most specific first.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// FormatDate renders a stored date as "Jan 2006". Empty input yields an empty
// string; input that matches no known layout is shown verbatim rather than
// rejected.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			if layout == "2006" {
				return t.Format("2006")
			}
			return t.Format("Jan 2006")
		}
	}
	return date
}

// FormatRange renders "start - end". When current is true the end is always
// the Present token, even if a stored end date exists. A range with neither
// side renders empty rather than as a bare dash.
func FormatRange(start, end string, current bool) string {
	s := FormatDate(start)
	e := FormatDate(end)
	if current {
		e = PresentToken
	}
	if s == "" && e == "" {
		return ""
	}
	return s + " - " + e
}
