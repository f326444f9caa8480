package models

import (
	"testing"
)

func TestPerson_Validate(t *testing.T) {
	tests := []struct {
		name        string
		person      Person
		expectError bool
	}{
		{
			name:        "Valid member",
			person:      Person{Name: "Ana", Title: "Eng", Compensation: 5000},
			expectError: false,
		},
		{
			name:        "Valid - zero compensation",
			person:      Person{Name: "Ana", Title: "Intern"},
			expectError: false,
		},
		{
			name:        "Invalid - missing name",
			person:      Person{Title: "Eng"},
			expectError: true,
		},
		{
			name:        "Invalid - blank title",
			person:      Person{Name: "Ana", Title: "  "},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.person.Validate()
			if tt.expectError && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestNewPerson(t *testing.T) {
	a := NewPerson("Ana", "Eng", 5000)
	b := NewPerson("Ana", "Eng", 5000)

	if a.ID == b.ID {
		t.Errorf("Expected distinct IDs, got %s twice", a.ID)
	}
	if a.JoinedAt.IsZero() {
		t.Errorf("Expected JoinedAt to be set")
	}
	if a.Compensation != 5000 {
		t.Errorf("Expected compensation 5000, got %d", a.Compensation)
	}
}
