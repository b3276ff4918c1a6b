// Package types provides type definitions for structured data used throughout the resume-studio system.
package types

import "github.com/go-playground/validator/v10"

// ResumePatch is a shallow section-level patch merged into the current
// resume. Only non-nil fields are applied; a provided list section replaces
// the stored one wholesale.
type ResumePatch struct {
	PersonalInfo   *PersonalInfo     `json:"personalInfo,omitempty"`
	Summary        *string           `json:"summary,omitempty"`
	WorkExperience *[]WorkExperience `json:"workExperience,omitempty"`
	Education      *[]Education      `json:"education,omitempty"`
	Skills         *[]Skill          `json:"skills,omitempty"`
	Projects       *[]Project        `json:"projects,omitempty"`
	Certifications *[]Certification  `json:"certifications,omitempty"`
	Languages      *[]Language       `json:"languages,omitempty"`
}

// EntryPatch is a single field-level update against a list entry.
type EntryPatch struct {
	Field string `json:"field" validate:"required"`
	Value any    `json:"value"`
}

// ExportRequest configures an export run.
type ExportRequest struct {
	Filename string `json:"filename,omitempty"`
	Template string `json:"template,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Surface  string `json:"surface,omitempty"`
}

// Validate validates the EntryPatch using the validator.
func (p *EntryPatch) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
