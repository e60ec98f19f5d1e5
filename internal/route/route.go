// Package route maps view paths to the views of the TUI
package route

import (
	"slices"
	"strings"

	"github.com/ayoisaiah/unwind/internal/apperr"
)

// Route is the path of a view.
type Route string

const (
	Home      Route = "/"
	Reset     Route = "/reset"
	Games     Route = "/games"
	Inspire   Route = "/inspire"
	Explore   Route = "/explore"
	Sound     Route = "/sound"
	Dashboard Route = "/dashboard"
	Extension Route = "/extension"
)

// All lists every route in navigation order.
var All = []Route{
	Home,
	Reset,
	Games,
	Inspire,
	Explore,
	Sound,
	Dashboard,
	Extension,
}

var titles = map[Route]string{
	Home:      "Home",
	Reset:     "Reset",
	Games:     "Games",
	Inspire:   "Inspire",
	Explore:   "Explore",
	Sound:     "Sound",
	Dashboard: "Dashboard",
	Extension: "Extension",
}

var errUnknownRoute = &apperr.Error{
	Message: "unknown view %q: expected one of /, /reset, /games, /inspire, /explore, /sound, /dashboard, /extension",
}

// Parse resolves a path to a route. A missing leading slash and a trailing
// slash are tolerated. Paths never carry parameters.
func Parse(path string) (Route, error) {
	p := strings.TrimSpace(path)
	p = "/" + strings.Trim(p, "/")

	r := Route(p)
	if !slices.Contains(All, r) {
		return "", errUnknownRoute.Fmt(path)
	}

	return r, nil
}

// Title returns the navigation label of r.
func (r Route) Title() string {
	return titles[r]
}

// Next returns the route after r, wrapping around.
func (r Route) Next() Route {
	return r.offset(1)
}

// Prev returns the route before r, wrapping around.
func (r Route) Prev() Route {
	return r.offset(-1)
}

func (r Route) offset(n int) Route {
	i := slices.Index(All, r)
	if i < 0 {
		return Home
	}

	l := len(All)

	return All[((i+n)%l+l)%l]
}
