package ports

import "teamdash/models"

// RosterSource supplies the roster the dashboard starts with
type RosterSource interface {
	// Read returns the members newest first
	Read() ([]models.Person, error)
}
