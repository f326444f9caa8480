package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"teamdash/domain/team"
	"teamdash/models"

	"github.com/google/uuid"
)

// Roster is a process-local PersonRepository. Members are kept newest first
// and every read returns a copy, so callers may aggregate without locking.
type Roster struct {
	mu      sync.RWMutex
	persons []models.Person
	now     func() time.Time
}

// NewRoster creates a roster seeded with persons (newest first)
func NewRoster(seed []models.Person) *Roster {
	r := &Roster{now: func() time.Time { return time.Now().UTC() }}
	r.persons = make([]models.Person, 0, len(seed))
	for _, p := range seed {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.persons = append(r.persons, p)
	}
	return r
}

// List returns a copy of the roster, newest member first
func (r *Roster) List(ctx context.Context) ([]models.Person, error) {
	if err := checkContext(ctx); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Person, len(r.persons))
	copy(out, r.persons)
	return out, nil
}

// Get retrieves a member by ID
func (r *Roster) Get(ctx context.Context, id uuid.UUID) (models.Person, error) {
	if err := checkContext(ctx); err != nil {
		return models.Person{}, fmt.Errorf("get member: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.Person{}, fmt.Errorf("get member %s: %w", id, team.PersonNotFound)
	}
	return r.persons[idx], nil
}

// Add prepends person, making them the latest member
func (r *Roster) Add(ctx context.Context, person models.Person) (models.Person, error) {
	if err := checkContext(ctx); err != nil {
		return models.Person{}, fmt.Errorf("add member: %w", err)
	}

	person.Name = strings.TrimSpace(person.Name)
	person.Title = strings.TrimSpace(person.Title)
	if err := person.Validate(); err != nil {
		return models.Person{}, fmt.Errorf("add member: %s: %w", err, team.PersonCreationFailure)
	}

	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	if person.JoinedAt.IsZero() {
		person.JoinedAt = r.now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(person.ID) >= 0 {
		return models.Person{}, fmt.Errorf("add member: duplicate id %s: %w", person.ID, team.PersonCreationFailure)
	}

	persons := make([]models.Person, 0, len(r.persons)+1)
	persons = append(persons, person)
	r.persons = append(persons, r.persons...)
	return person, nil
}

// Update replaces the editable fields of an existing member in place
func (r *Roster) Update(ctx context.Context, person models.Person) (models.Person, error) {
	if err := checkContext(ctx); err != nil {
		return models.Person{}, fmt.Errorf("update member: %w", err)
	}

	person.Name = strings.TrimSpace(person.Name)
	person.Title = strings.TrimSpace(person.Title)
	if err := person.Validate(); err != nil {
		return models.Person{}, fmt.Errorf("update member: %s: %w", err, team.PersonUpdateFailure)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(person.ID)
	if idx < 0 {
		return models.Person{}, fmt.Errorf("update member %s: %w", person.ID, team.PersonNotFound)
	}

	stored := r.persons[idx]
	stored.Name = person.Name
	stored.Title = person.Title
	stored.Compensation = person.Compensation
	r.persons[idx] = stored
	return stored, nil
}

// Delete removes a member
func (r *Roster) Delete(ctx context.Context, id uuid.UUID) error {
	if err := checkContext(ctx); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("delete member %s: %w", id, team.PersonNotFound)
	}

	persons := make([]models.Person, 0, len(r.persons)-1)
	persons = append(persons, r.persons[:idx]...)
	r.persons = append(persons, r.persons[idx+1:]...)
	return nil
}

// indexOf must be called with r.mu held
func (r *Roster) indexOf(id uuid.UUID) int {
	for i, p := range r.persons {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", err, team.ConnectionTimeout)
	}
	return nil
}
