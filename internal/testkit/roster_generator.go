package testkit

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"teamdash/models"
)

// RosterGeneratorConfig controls synthetic roster generation
type RosterGeneratorConfig struct {
	MemberCount int
	Seed        int64
	// Now anchors join dates; members join at most one per week going back
	Now time.Time
}

// DefaultRosterGeneratorConfig returns a small demo roster configuration
func DefaultRosterGeneratorConfig() RosterGeneratorConfig {
	return RosterGeneratorConfig{
		MemberCount: 12,
		Seed:        42,
		Now:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// titleBand is a title with its monthly compensation range
type titleBand struct {
	title string
	low   int
	high  int
}

var titleBands = []titleBand{
	{"Software Engineer", 6500, 9500},
	{"Product Manager", 7000, 10000},
	{"Designer", 5000, 8000},
	{"Data Analyst", 5500, 8000},
	{"Engineering Manager", 9000, 13000},
	{"QA Engineer", 4500, 7000},
}

var firstNames = []string{
	"Ana", "Bo", "Cyrus", "Dalia", "Emeka", "Farah", "Goran", "Hana",
	"Ivo", "Jin", "Kemal", "Lena", "Mateo", "Nadia", "Oskar", "Priya",
}

var lastNames = []string{
	"Alvarez", "Brandt", "Chen", "Dubois", "Eriksen", "Fofana", "Garcia",
	"Haddad", "Ito", "Jovanovic", "Kowalski", "Lindqvist", "Mensah", "Novak",
}

// RosterGenerator produces deterministic rosters for demos and tests
type RosterGenerator struct {
	config RosterGeneratorConfig
}

// NewRosterGenerator creates a generator; the same config always yields the same roster
func NewRosterGenerator(config RosterGeneratorConfig) *RosterGenerator {
	if config.Now.IsZero() {
		config.Now = DefaultRosterGeneratorConfig().Now
	}
	return &RosterGenerator{config: config}
}

// Generate returns MemberCount members, newest first
func (g *RosterGenerator) Generate() []models.Person {
	rng := rand.New(rand.NewSource(g.config.Seed))

	persons := make([]models.Person, 0, g.config.MemberCount)
	joined := g.config.Now
	for i := 0; i < g.config.MemberCount; i++ {
		band := titleBands[rng.Intn(len(titleBands))]
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]

		// round to the nearest hundred
		compensation := (band.low + rng.Intn(band.high-band.low+1)) / 100 * 100

		persons = append(persons, models.Person{
			ID:           uuid.Must(uuid.NewRandomFromReader(rng)),
			Name:         name,
			Title:        band.title,
			Compensation: compensation,
			JoinedAt:     joined,
		})

		joined = joined.AddDate(0, 0, -(1 + rng.Intn(7)))
	}
	return persons
}

// Read implements ports.RosterSource
func (g *RosterGenerator) Read() ([]models.Person, error) {
	return g.Generate(), nil
}
