package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleFor(t *testing.T) {
	assert.Equal(t, LinkStyleSelected, StyleFor(RouteTeam, RouteTeam))
	assert.Equal(t, LinkStyle, StyleFor(RouteDashboard, RouteTeam))
	assert.Equal(t, LinkStyleSelected, StyleFor(RouteDashboard, RouteDashboard))
}

func TestState_SetUpdatesLinks(t *testing.T) {
	state := NewState(RouteDashboard)

	links := state.Links()
	require.Len(t, links, 2)
	assert.Equal(t, "Dashboard", links[0].Label)
	assert.Equal(t, LinkStyleSelected, links[0].Class)
	assert.Equal(t, LinkStyle, links[1].Class)

	state.Set("/team/")
	assert.Equal(t, RouteTeam, state.Current())

	links = state.Links()
	assert.Equal(t, LinkStyle, links[0].Class)
	assert.Equal(t, LinkStyleSelected, links[1].Class)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"", RouteDashboard},
		{"/", RouteDashboard},
		{"//", RouteDashboard},
		{"/team", RouteTeam},
		{"/team/", RouteTeam},
		{"/other", Route("/other")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.path))
		})
	}
}

func TestLinks_UnknownRouteSelectsNothing(t *testing.T) {
	for _, link := range Links("/missing") {
		assert.Equal(t, LinkStyle, link.Class)
	}
}
