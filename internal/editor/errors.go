package editor

import "fmt"

// NotFoundError indicates a list entry with the given id does not exist.
type NotFoundError struct {
	Kind string // "work", "education" or "skill"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s entry not found: %s", e.Kind, e.ID)
}
