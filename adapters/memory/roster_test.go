package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamdash/domain/team"
	"teamdash/models"
)

func seedRoster() *Roster {
	return NewRoster([]models.Person{
		{Name: "Ana", Title: "Eng", Compensation: 5000},
		{Name: "Bo", Title: "PM", Compensation: 6000},
	})
}

func TestRoster_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	roster := seedRoster()

	first, err := roster.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.NotEqual(t, uuid.Nil, first[0].ID)

	first[0].Name = "mutated"

	second, err := roster.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", second[0].Name)
}

func TestRoster_AddBecomesLatestMember(t *testing.T) {
	ctx := context.Background()
	roster := seedRoster()

	added, err := roster.Add(ctx, models.Person{Name: "  Cy ", Title: "Eng", Compensation: 4000})
	require.NoError(t, err)
	assert.Equal(t, "Cy", added.Name)
	assert.NotEqual(t, uuid.Nil, added.ID)
	assert.False(t, added.JoinedAt.IsZero())

	persons, err := roster.List(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 3)

	summary := team.Aggregate(persons)
	assert.Equal(t, "Cy", summary.LatestMember)
	assert.Equal(t, int64(15000), summary.TotalCost)
	assert.Equal(t, []team.TitleCount{{Title: "Eng", Count: 2}, {Title: "PM", Count: 1}}, summary.Histogram)
}

func TestRoster_AddValidation(t *testing.T) {
	ctx := context.Background()
	roster := seedRoster()

	tests := []struct {
		name   string
		person models.Person
	}{
		{"missing name", models.Person{Title: "Eng"}},
		{"blank name", models.Person{Name: "   ", Title: "Eng"}},
		{"missing title", models.Person{Name: "Dee"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := roster.Add(ctx, tt.person)
			require.Error(t, err)
			assert.ErrorIs(t, err, team.PersonCreationFailure)
		})
	}

	persons, err := roster.List(ctx)
	require.NoError(t, err)
	assert.Len(t, persons, 2)
}

func TestRoster_AddDuplicateID(t *testing.T) {
	ctx := context.Background()
	roster := seedRoster()
	persons, _ := roster.List(ctx)

	_, err := roster.Add(ctx, models.Person{ID: persons[0].ID, Name: "Dup", Title: "Eng"})
	assert.ErrorIs(t, err, team.PersonCreationFailure)
}

func TestRoster_GetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	roster := seedRoster()
	persons, err := roster.List(ctx)
	require.NoError(t, err)
	bo := persons[1]

	got, err := roster.Get(ctx, bo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bo", got.Name)

	bo.Title = "Lead"
	bo.Compensation = 7000
	updated, err := roster.Update(ctx, bo)
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Title)

	persons, err = roster.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Lead", persons[1].Title, "update keeps position")

	require.NoError(t, roster.Delete(ctx, bo.ID))
	_, err = roster.Get(ctx, bo.ID)
	assert.ErrorIs(t, err, team.PersonNotFound)

	persons, err = roster.List(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "Ana", persons[0].Name)
}

func TestRoster_MissingIDs(t *testing.T) {
	ctx := context.Background()
	roster := seedRoster()
	missing := uuid.New()

	_, err := roster.Get(ctx, missing)
	assert.ErrorIs(t, err, team.PersonNotFound)

	_, err = roster.Update(ctx, models.Person{ID: missing, Name: "X", Title: "Y"})
	assert.ErrorIs(t, err, team.PersonNotFound)

	err = roster.Delete(ctx, missing)
	assert.ErrorIs(t, err, team.PersonNotFound)
}

func TestRoster_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := seedRoster().List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, team.ConnectionTimeout)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoster_ConcurrentAddAndList(t *testing.T) {
	ctx := context.Background()
	roster := NewRoster(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := roster.Add(ctx, models.Person{Name: "N", Title: "T", Compensation: 1})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			persons, err := roster.List(ctx)
			assert.NoError(t, err)
			summary := team.Aggregate(persons)
			assert.Equal(t, len(persons), summary.Headcount)
		}()
	}
	wg.Wait()

	persons, err := roster.List(ctx)
	require.NoError(t, err)
	assert.Len(t, persons, 20)
}
