// Package editor holds the mutable working copy of a resume.
//
// A Session is the single writer for one document. Readers always receive
// deep-copied snapshots, so renders and exports in flight never observe a
// half-applied edit.
package editor

import (
	"fmt"
	"sync"

	"github.com/mwhite/resume-studio/internal/types"
)

// Session is the editing state for one resume. Safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	resume *types.Resume
}

// NewSession creates a session around the given resume. A nil resume starts
// the session on an empty document.
func NewSession(initial *types.Resume) *Session {
	if initial == nil {
		initial = &types.Resume{}
	}
	return &Session{resume: initial.Clone()}
}

// Snapshot returns a deep copy of the current document.
func (s *Session) Snapshot() *types.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resume.Clone()
}

// Load replaces the current document with a copy of r.
func (s *Session) Load(r *types.Resume) {
	if r == nil {
		r = &types.Resume{}
	}
	s.mu.Lock()
	s.resume = r.Clone()
	s.mu.Unlock()
}

// Apply merges a section-level patch into the document. Nil patch fields are
// left untouched; provided list sections replace the stored ones wholesale.
func (s *Session) Apply(patch types.ResumePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.PersonalInfo != nil {
		s.resume.PersonalInfo = *patch.PersonalInfo
	}
	if patch.Summary != nil {
		s.resume.Summary = *patch.Summary
	}
	if patch.WorkExperience != nil {
		s.resume.WorkExperience = *patch.WorkExperience
	}
	if patch.Education != nil {
		s.resume.Education = *patch.Education
	}
	if patch.Skills != nil {
		s.resume.Skills = *patch.Skills
	}
	if patch.Projects != nil {
		s.resume.Projects = *patch.Projects
	}
	if patch.Certifications != nil {
		s.resume.Certifications = *patch.Certifications
	}
	if patch.Languages != nil {
		s.resume.Languages = *patch.Languages
	}
	// The clone severs aliasing with the caller's slices.
	s.resume = s.resume.Clone()
}

// AddWork appends a blank work entry and returns it.
func (s *Session) AddWork() types.WorkExperience {
	entry := types.NewWorkExperience()
	s.mu.Lock()
	s.resume.WorkExperience = append(s.resume.WorkExperience, entry)
	s.mu.Unlock()
	return entry
}

// UpdateWork applies a field-level patch to the work entry with the given id.
func (s *Session) UpdateWork(id string, patch types.EntryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resume.WorkExperience {
		if s.resume.WorkExperience[i].ID != id {
			continue
		}
		return patchWork(&s.resume.WorkExperience[i], patch)
	}
	return &NotFoundError{Kind: "work", ID: id}
}

// RemoveWork deletes the work entry with the given id.
func (s *Session) RemoveWork(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resume.WorkExperience {
		if s.resume.WorkExperience[i].ID == id {
			s.resume.WorkExperience = append(s.resume.WorkExperience[:i], s.resume.WorkExperience[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "work", ID: id}
}

// AddEducation appends a blank education entry and returns it.
func (s *Session) AddEducation() types.Education {
	entry := types.NewEducation()
	s.mu.Lock()
	s.resume.Education = append(s.resume.Education, entry)
	s.mu.Unlock()
	return entry
}

// UpdateEducation applies a field-level patch to the education entry with the
// given id.
func (s *Session) UpdateEducation(id string, patch types.EntryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resume.Education {
		if s.resume.Education[i].ID != id {
			continue
		}
		return patchEducation(&s.resume.Education[i], patch)
	}
	return &NotFoundError{Kind: "education", ID: id}
}

// RemoveEducation deletes the education entry with the given id.
func (s *Session) RemoveEducation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resume.Education {
		if s.resume.Education[i].ID == id {
			s.resume.Education = append(s.resume.Education[:i], s.resume.Education[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "education", ID: id}
}

// AddSkill appends a blank skill entry and returns it.
func (s *Session) AddSkill() types.Skill {
	entry := types.NewSkill()
	s.mu.Lock()
	s.resume.Skills = append(s.resume.Skills, entry)
	s.mu.Unlock()
	return entry
}

// UpdateSkill applies a field-level patch to the skill entry with the given id.
func (s *Session) UpdateSkill(id string, patch types.EntryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resume.Skills {
		if s.resume.Skills[i].ID != id {
			continue
		}
		return patchSkill(&s.resume.Skills[i], patch)
	}
	return &NotFoundError{Kind: "skill", ID: id}
}

// RemoveSkill deletes the skill entry with the given id.
func (s *Session) RemoveSkill(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resume.Skills {
		if s.resume.Skills[i].ID == id {
			s.resume.Skills = append(s.resume.Skills[:i], s.resume.Skills[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "skill", ID: id}
}

func patchWork(entry *types.WorkExperience, patch types.EntryPatch) error {
	switch patch.Field {
	case "company":
		return setString(&entry.Company, patch)
	case "position":
		return setString(&entry.Position, patch)
	case "location":
		return setString(&entry.Location, patch)
	case "startDate":
		return setString(&entry.StartDate, patch)
	case "endDate":
		return setString(&entry.EndDate, patch)
	case "current":
		v, ok := patch.Value.(bool)
		if !ok {
			return fmt.Errorf("field %q wants a boolean", patch.Field)
		}
		entry.Current = v
		return nil
	case "description":
		lines, err := stringSlice(patch.Value)
		if err != nil {
			return fmt.Errorf("field %q: %w", patch.Field, err)
		}
		entry.Description = lines
		return nil
	default:
		return fmt.Errorf("unknown work field: %q", patch.Field)
	}
}

func patchEducation(entry *types.Education, patch types.EntryPatch) error {
	switch patch.Field {
	case "institution":
		return setString(&entry.Institution, patch)
	case "degree":
		return setString(&entry.Degree, patch)
	case "field":
		return setString(&entry.Field, patch)
	case "startDate":
		return setString(&entry.StartDate, patch)
	case "endDate":
		return setString(&entry.EndDate, patch)
	case "gpa":
		return setString(&entry.GPA, patch)
	case "honors":
		return setString(&entry.Honors, patch)
	default:
		return fmt.Errorf("unknown education field: %q", patch.Field)
	}
}

func patchSkill(entry *types.Skill, patch types.EntryPatch) error {
	switch patch.Field {
	case "name":
		return setString(&entry.Name, patch)
	case "category":
		return setString(&entry.Category, patch)
	case "level":
		v, ok := patch.Value.(string)
		if !ok {
			return fmt.Errorf("field %q wants a string", patch.Field)
		}
		entry.Level = types.SkillLevel(v)
		return nil
	default:
		return fmt.Errorf("unknown skill field: %q", patch.Field)
	}
}

func setString(dst *string, patch types.EntryPatch) error {
	v, ok := patch.Value.(string)
	if !ok {
		return fmt.Errorf("field %q wants a string", patch.Field)
	}
	*dst = v
	return nil
}

// stringSlice accepts both []string and the []any a decoded JSON body
// produces.
func stringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("wants a list of strings, got %T element", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("wants a list of strings, got %T", value)
	}
}
