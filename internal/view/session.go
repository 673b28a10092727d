package view

import (
	"io"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/router"
)

// Session is one page session: a route state, the abstract visibility and
// the document they produce. The route reaches the renderer only through
// the state's subscription, so every navigation that changes the fragment
// changes what Render draws. Not safe for concurrent use.
type Session struct {
	renderer *Renderer
	content  *content.Content
	state    *router.State
	vis      *Visibility
	route    router.Route
}

// NewSession starts a session at the home fragment.
func (r *Renderer) NewSession(c *content.Content) *Session {
	s := &Session{
		renderer: r,
		content:  c,
		state:    router.NewState(""),
		vis:      NewVisibility(),
	}
	s.route = s.state.Route()
	s.state.Subscribe(func(rt router.Route) { s.route = rt })
	return s
}

// Navigate moves the session to fragment. An empty fragment means home.
func (s *Session) Navigate(fragment string) bool {
	if fragment == "" {
		fragment = router.HomeFragment
	}
	return s.state.Navigate(fragment)
}

// Toggle flips one item's abstract.
func (s *Session) Toggle(key ItemKey) bool { return s.vis.Toggle(key) }

// Fragment returns the current fragment.
func (s *Session) Fragment() string { return s.state.Fragment() }

// Route returns the route the next Render draws.
func (s *Session) Route() router.Route { return s.route }

// Render writes the document for the current route and visibility.
func (s *Session) Render(w io.Writer) error {
	return s.renderer.Document(w, s.route, s.content, s.vis)
}
