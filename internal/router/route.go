// Package router resolves URL fragments into the portfolio's named views and
// tracks the active one for a single page session.
package router

import "strings"

// Route names one of the portfolio views.
type Route string

const (
	Home     Route = "home"
	Research Route = "research"
	Teaching Route = "teaching"
)

// Routes lists every route in navigation order.
var Routes = []Route{Home, Research, Teaching}

// HomeFragment is the canonical fragment for the home view.
const HomeFragment = "#/"

const (
	researchPrefix = "#/research"
	teachingPrefix = "#/teaching"
)

// Parse resolves a URL fragment to a route. Matching is by prefix, so
// "#/research/jmp" is still Research. Anything unrecognized, including the
// empty string, resolves to Home. A fragment without its leading '#' is
// treated as though it had one.
func Parse(fragment string) Route {
	f := normalize(fragment)
	switch {
	case strings.HasPrefix(f, researchPrefix):
		return Research
	case strings.HasPrefix(f, teachingPrefix):
		return Teaching
	default:
		return Home
	}
}

// Fragment returns the canonical fragment that selects r.
func (r Route) Fragment() string {
	switch r {
	case Research:
		return researchPrefix
	case Teaching:
		return teachingPrefix
	default:
		return HomeFragment
	}
}

// Title is the human-readable name used in navigation and page titles.
func (r Route) Title() string {
	switch r {
	case Research:
		return "Research"
	case Teaching:
		return "Teaching"
	default:
		return "Home"
	}
}

// String implements fmt.Stringer.
func (r Route) String() string { return string(r) }

// normalize prepends '#' to a non-empty fragment that lacks it.
func normalize(fragment string) string {
	if fragment == "" || strings.HasPrefix(fragment, "#") {
		return fragment
	}
	return "#" + fragment
}
