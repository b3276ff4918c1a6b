package suggestions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite/resume-studio/internal/types"
)

func completeResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{
			Email:    "a@b.c",
			Phone:    "555-0100",
			Location: "Portland, OR",
			LinkedIn: "linkedin.com/in/someone",
		},
		Summary: strings.Repeat("Seasoned engineer shipping reliable systems. ", 2),
		WorkExperience: []types.WorkExperience{
			{Company: "Acme", Description: []string{"Led migration of the billing platform to Go"}},
		},
		Education: []types.Education{{Institution: "State University"}},
		Skills: []types.Skill{
			{Name: "Go"}, {Name: "SQL"}, {Name: "Kubernetes"}, {Name: "gRPC"}, {Name: "Terraform"},
		},
	}
}

func titles(suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Title)
	}
	return out
}

func TestAnalyzeEmptyResume(t *testing.T) {
	got := NewEngine(nil).Analyze(&types.Resume{})

	names := titles(got)
	assert.Contains(t, names, "Professional Summary Missing or Too Short")
	assert.Contains(t, names, "Add Work Experience")
	assert.Contains(t, names, "Add More Relevant Skills")
	assert.Contains(t, names, "Complete Contact Information")
	assert.Contains(t, names, "Add Professional Profiles")
	assert.Contains(t, names, "Add Education Information")
}

func TestAnalyzeCompleteResume(t *testing.T) {
	got := NewEngine(nil).Analyze(completeResume())

	require.Len(t, got, 1)
	assert.Equal(t, "Great Resume Foundation!", got[0].Title)
	assert.Equal(t, PriorityLow, got[0].Priority)
}

func TestAnalyzeWeakDescriptions(t *testing.T) {
	r := completeResume()
	r.WorkExperience[0].Description = []string{"Did stuff"}

	got := NewEngine(nil).Analyze(r)
	assert.Contains(t, titles(got), "Strengthen Experience Descriptions")
}

func TestAnalyzeMissingContactNamesFields(t *testing.T) {
	r := completeResume()
	r.PersonalInfo.Phone = ""
	r.PersonalInfo.Location = ""

	got := NewEngine(nil).Analyze(r)

	var found *Suggestion
	for i := range got {
		if got[i].Title == "Complete Contact Information" {
			found = &got[i]
		}
	}
	require.NotNil(t, found)
	assert.Contains(t, found.Suggestion, "phone, location")
	assert.NotContains(t, found.Suggestion, "email")
	assert.Equal(t, PriorityHigh, found.Priority)
}

func TestAnalyzeProfileRuleNeedsBothMissing(t *testing.T) {
	r := completeResume()
	r.PersonalInfo.LinkedIn = ""
	r.PersonalInfo.GitHub = "github.com/someone"

	got := NewEngine(nil).Analyze(r)
	assert.NotContains(t, titles(got), "Add Professional Profiles")
}

func TestAnalyzeNeverReturnsEmpty(t *testing.T) {
	engine := NewEngine(nil)
	assert.NotEmpty(t, engine.Analyze(&types.Resume{}))
	assert.NotEmpty(t, engine.Analyze(completeResume()))
}

func TestImproveSummaryExpandsShortContent(t *testing.T) {
	short := "I write code."
	improved := ImproveSection(TypeSummary, short)
	assert.True(t, strings.HasPrefix(improved, short))
	assert.Greater(t, len(improved), len(short))

	long := strings.Repeat("Seasoned engineer with measurable impact. ", 3)
	assert.Equal(t, long, ImproveSection(TypeSummary, long))
}

func TestImproveExperienceSuggestsActionVerbs(t *testing.T) {
	weak := "Was responsible for the deploy pipeline"
	assert.Contains(t, ImproveSection(TypeExperience, weak), "action verbs")

	strong := "Led the deploy pipeline rebuild"
	assert.Equal(t, strong, ImproveSection(TypeExperience, strong))
}

func TestImproveUnknownSectionUnchanged(t *testing.T) {
	assert.Equal(t, "anything", ImproveSection("hobbies", "anything"))
}
