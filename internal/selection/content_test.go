package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite/resume-studio/internal/types"
)

func TestBuildEmptyResume(t *testing.T) {
	c := Build(&types.Resume{})

	assert.False(t, c.HasSummary())
	assert.False(t, c.HasWork())
	assert.False(t, c.HasEducation())
	assert.False(t, c.HasSkills())
	assert.Empty(t, c.Header.Name)
	assert.Empty(t, c.ContactLine())
}

func TestSectionPresence(t *testing.T) {
	tests := []struct {
		name   string
		resume types.Resume
		check  func(t *testing.T, c Content)
	}{
		{
			name:   "summary only",
			resume: types.Resume{Summary: "Seasoned engineer"},
			check: func(t *testing.T, c Content) {
				assert.True(t, c.HasSummary())
				assert.False(t, c.HasWork())
			},
		},
		{
			name:   "whitespace summary counts as absent",
			resume: types.Resume{Summary: "   \n\t "},
			check: func(t *testing.T, c Content) {
				assert.False(t, c.HasSummary())
			},
		},
		{
			name:   "work only",
			resume: types.Resume{WorkExperience: []types.WorkExperience{{ID: "w1", Position: "Engineer"}}},
			check: func(t *testing.T, c Content) {
				assert.True(t, c.HasWork())
				assert.False(t, c.HasSummary())
				assert.False(t, c.HasSkills())
			},
		},
		{
			name:   "skills only",
			resume: types.Resume{Skills: []types.Skill{{ID: "s1", Name: "Go"}}},
			check: func(t *testing.T, c Content) {
				assert.True(t, c.HasSkills())
				assert.False(t, c.HasEducation())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Build(&tt.resume))
		})
	}
}

func TestFilterBullets(t *testing.T) {
	in := []string{"  ", "Led project", "", "\t\n", "Shipped v2"}
	out := FilterBullets(in)

	assert.Equal(t, []string{"Led project", "Shipped v2"}, out)
	// Storage is untouched.
	assert.Len(t, in, 5)
}

func TestContactLineOmitsAbsentFields(t *testing.T) {
	c := Build(&types.Resume{PersonalInfo: types.PersonalInfo{
		Email:    "jo@example.com",
		Location: "Lisbon",
	}})

	assert.Equal(t, "jo@example.com | Lisbon", c.ContactLine())
	assert.NotContains(t, c.ContactLine(), "|  |")
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"2022-01", "Jan 2022"},
		{"2020-06-15", "Jun 2020"},
		{"2019", "2019"},
		{"sometime", "sometime"}, // unparseable input shown verbatim
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, FormatDate(tt.in), "input %q", tt.in)
	}
}

func TestFormatRangePresentWinsOverStoredEndDate(t *testing.T) {
	// An inconsistent stored end date must never leak into display.
	got := FormatRange("2020-01-01", "2019-01-01", true)
	assert.Equal(t, "Jan 2020 - Present", got)
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "Jan 2022 - Mar 2023", FormatRange("2022-01", "2023-03", false))
	assert.Equal(t, " - Jan 2023", FormatRange("", "2023-01", false))
	assert.Equal(t, "", FormatRange("", "", false))
	assert.Equal(t, " - Present", FormatRange("", "", true))
}

func TestWorkViewTitleLine(t *testing.T) {
	w := WorkView{Position: "Engineer", Company: "Acme"}
	assert.Equal(t, "Engineer | Acme", w.TitleLine())

	full := WorkView{Position: "Engineer", Company: "Acme", Location: "Berlin"}
	assert.Equal(t, "Engineer | Acme | Berlin", full.TitleLine())
}

func TestEduTitleDegradesGracefully(t *testing.T) {
	c := Build(&types.Resume{Education: []types.Education{
		{ID: "e1", Degree: "BSc", Field: "Computer Science"},
		{ID: "e2", Degree: "MBA"},
		{ID: "e3", Field: "Physics"},
		{ID: "e4"},
	}})

	require.Len(t, c.Education, 4)
	assert.Equal(t, "BSc in Computer Science", c.Education[0].Title)
	assert.Equal(t, "MBA", c.Education[1].Title)
	assert.Equal(t, "Physics", c.Education[2].Title)
	assert.Empty(t, c.Education[3].Title)
}

func TestSkillDots(t *testing.T) {
	c := Build(&types.Resume{Skills: []types.Skill{
		{ID: "1", Name: "Go", Level: types.LevelExpert},
		{ID: "2", Name: "SQL", Level: types.LevelBeginner},
	}})

	require.Len(t, c.Skills, 2)
	assert.Equal(t, 5, c.Skills[0].Dots)
	assert.Equal(t, 2, c.Skills[1].Dots)
}

func TestInitials(t *testing.T) {
	c := Build(&types.Resume{PersonalInfo: types.PersonalInfo{FullName: "ada maria lovelace"}})
	assert.Equal(t, "AML", c.Header.Initials)
}

func TestSkillNames(t *testing.T) {
	c := Build(&types.Resume{Skills: []types.Skill{
		{ID: "1", Name: "Go"},
		{ID: "2", Name: "Kubernetes"},
	}})
	assert.Equal(t, "Go, Kubernetes", c.SkillNames())
}
