package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person represents a team member as known to the dashboard.
// Rosters are ordered newest first: index 0 is the member who joined last.
type Person struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Compensation int       `json:"compensation"`
	JoinedAt     time.Time `json:"joined_at"`
}

// NewPerson creates a person with a fresh ID
func NewPerson(name, title string, compensation int) Person {
	return Person{
		ID:           uuid.New(),
		Name:         name,
		Title:        title,
		Compensation: compensation,
		JoinedAt:     time.Now().UTC(),
	}
}

// Validate checks the fields a member must always carry
func (p Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
