// Package memory defines the sole entity of the application: a dated
// memory record with a title, description, image and tags.
package memory

import (
	"time"

	pkgerrors "github.com/jn0w/Lindsey/pkg/errors"
)

// Memory is a single stored moment. The ID is assigned by the record
// store on creation and never changes afterwards.
type Memory struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"imageUrl"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// dateLayouts are the accepted input formats for the memory date.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// NewMemory builds an unpersisted memory from user input. The store
// assigns the ID; both timestamps start equal.
func NewMemory(title, description, imageURL, date string, tags []string, now time.Time) (*Memory, error) {
	m := &Memory{
		Title:       title,
		Description: description,
		Date:        ParseDate(date, now),
		ImageURL:    imageURL,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate enforces the persisted-record invariants
func (m *Memory) Validate() error {
	if m.Title == "" || m.Description == "" || m.ImageURL == "" {
		return pkgerrors.NewValidationError("Title, description, and image are required")
	}
	return nil
}

// ParseDate parses a memory date, falling back to the given time when
// the input is absent or unparsable. An unparsable date is not an error.
func ParseDate(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}
