package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamdash/models"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{15000, "$15,000"},
		{1234567, "$1,234,567"},
		{-100, "$-100"},
		{-2500, "$-2,500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "1234", FormatCount(1234))
}

func TestCompensationStats(t *testing.T) {
	got, err := CompensationStats([]models.Person{
		person("A", "X", 1000),
		person("B", "X", 3000),
		person("C", "Y", 2000),
	})
	require.NoError(t, err)
	assert.InDelta(t, 2000, got.Mean, 1e-9)
	assert.InDelta(t, 2000, got.Median, 1e-9)
	assert.InDelta(t, 1000, got.Min, 1e-9)
	assert.InDelta(t, 3000, got.Max, 1e-9)
	assert.InDelta(t, 1000, got.StdDev, 1e-9)
}

func TestCompensationStats_Empty(t *testing.T) {
	got, err := CompensationStats(nil)
	require.NoError(t, err)
	assert.Equal(t, CostStats{}, got)
}

func TestCompensationStats_Single(t *testing.T) {
	got, err := CompensationStats([]models.Person{person("A", "X", 500)})
	require.NoError(t, err)
	assert.InDelta(t, 500, got.Mean, 1e-9)
	assert.Zero(t, got.StdDev)
}
