package team

import (
	"teamdash/models"
)

// TitleCount is one histogram bucket
type TitleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Summary holds the dashboard metrics derived from a roster
type Summary struct {
	Headcount    int          `json:"headcount"`
	TotalCost    int64        `json:"total_cost"`
	LatestMember string       `json:"latest_member"`
	Histogram    []TitleCount `json:"histogram"`
}

// Aggregate computes the dashboard summary in a single pass over persons.
// The first person is taken as the most recently joined member. Histogram
// buckets keep the order in which their titles were first seen.
// persons is never modified.
func Aggregate(persons []models.Person) Summary {
	summary := Summary{
		Histogram: []TitleCount{},
	}

	// title -> position in summary.Histogram
	positions := make(map[string]int)

	for i, person := range persons {
		if i == 0 {
			summary.LatestMember = person.Name
		}

		summary.TotalCost += int64(person.Compensation)

		if pos, seen := positions[person.Title]; seen {
			summary.Histogram[pos].Count++
		} else {
			positions[person.Title] = len(summary.Histogram)
			summary.Histogram = append(summary.Histogram, TitleCount{Title: person.Title, Count: 1})
		}

		summary.Headcount++
	}

	return summary
}

// Categories returns the histogram titles in first-seen order
func (s Summary) Categories() []string {
	categories := make([]string, len(s.Histogram))
	for i, bucket := range s.Histogram {
		categories[i] = bucket.Title
	}
	return categories
}

// Counts returns the histogram counts parallel to Categories.
// Values are always whole numbers.
func (s Summary) Counts() []float64 {
	counts := make([]float64, len(s.Histogram))
	for i, bucket := range s.Histogram {
		counts[i] = float64(bucket.Count)
	}
	return counts
}

// FormattedTotalCost returns the total cost as a US dollar string, e.g. $1,234,567
func (s Summary) FormattedTotalCost() string {
	return FormatCurrency(s.TotalCost)
}

// Widget is a label/value pair shown on the dashboard
type Widget struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Widgets returns the three dashboard cards in display order
func (s Summary) Widgets() []Widget {
	return []Widget{
		{Label: "Team Members", Value: FormatCount(s.Headcount)},
		{Label: "Monthly Team Cost", Value: s.FormattedTotalCost()},
		{Label: "Just Joined", Value: s.LatestMember},
	}
}
