package nav

import (
	"strings"
)

// Route identifies a top-level page
type Route string

const (
	RouteDashboard Route = "/"
	RouteTeam      Route = "/team"
)

// Header link classes
const (
	LinkStyle         = "border-b-0 border-[#7734e7] h-8 text-white ml-4 mr-4 hover:border-b-2"
	LinkStyleSelected = "border-b-2 border-[#9734e7] h-8 text-white ml-4 mr-4 hover:border-b-2"
)

// Link is a header entry with its resolved style
type Link struct {
	Label string
	Href  Route
	Class string
}

var headerLinks = []struct {
	label string
	route Route
}{
	{"Dashboard", RouteDashboard},
	{"Team", RouteTeam},
}

// State holds the route currently being viewed
type State struct {
	current Route
}

// NewState creates a state positioned on route
func NewState(route Route) *State {
	s := &State{}
	s.Set(route)
	return s
}

// Set updates the current route. Trailing slashes are ignored so that
// /team/ highlights the same entry as /team.
func (s *State) Set(route Route) {
	s.current = Normalize(string(route))
}

// Current returns the current route
func (s *State) Current() Route {
	return s.current
}

// Links returns the header entries styled for the current route
func (s *State) Links() []Link {
	return Links(s.current)
}

// Normalize converts a request path into a Route
func Normalize(path string) Route {
	if path == "" {
		return RouteDashboard
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return RouteDashboard
		}
	}
	return Route(path)
}

// StyleFor returns the selected style when target is the current route
func StyleFor(current, target Route) string {
	if current == target {
		return LinkStyleSelected
	}
	return LinkStyle
}

// Links returns the header entries styled for current
func Links(current Route) []Link {
	links := make([]Link, len(headerLinks))
	for i, l := range headerLinks {
		links[i] = Link{
			Label: l.label,
			Href:  l.route,
			Class: StyleFor(current, l.route),
		}
	}
	return links
}
