package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResumeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleResumeJSON = `{
	"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"},
	"summary": "Backend engineer.",
	"skills": [{"name": "Go", "level": "Expert"}]
}`

func TestLoadResumeFile(t *testing.T) {
	path := writeResumeFile(t, sampleResumeJSON)

	resume, err := loadResumeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resume.PersonalInfo.FullName)
	require.Len(t, resume.Skills, 1)
	assert.Equal(t, "Go", resume.Skills[0].Name)
}

func TestLoadResumeFileInvalidDocument(t *testing.T) {
	path := writeResumeFile(t, `{"summary": 42}`)

	_, err := loadResumeFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume document is invalid")
}

func TestLoadResumeFileMissing(t *testing.T) {
	_, err := loadResumeFile("/nonexistent/resume.json")
	assert.Error(t, err)
}

func TestResolveFormats(t *testing.T) {
	formats, err := resolveFormats("all")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"pdf", "docx", "txt"}, formats)

	formats, err = resolveFormats("txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"txt"}, formats)

	_, err = resolveFormats("odt")
	assert.Error(t, err)
}

func TestRunRenderWritesHTML(t *testing.T) {
	resumePath := writeResumeFile(t, sampleResumeJSON)
	outPath := filepath.Join(t.TempDir(), "resume.html")

	renderResumePath = resumePath
	renderTemplate = "modern"
	renderTheme = "purple"
	renderOut = outPath
	t.Cleanup(func() {
		renderResumePath, renderTemplate, renderTheme, renderOut = "", "", "", ""
	})

	require.NoError(t, runRender(nil, nil))

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Jane Doe")
}

func TestRunValidate(t *testing.T) {
	assert.NoError(t, runValidate(nil, []string{writeResumeFile(t, sampleResumeJSON)}))
	assert.Error(t, runValidate(nil, []string{writeResumeFile(t, `{"summary": 42}`)}))
}
