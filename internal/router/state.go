package router

// Listener is called with the new route after the fragment changes.
type Listener func(Route)

// State owns the current fragment for one page session and notifies
// subscribers when navigation changes it. It is not safe for concurrent use;
// each session owns its own State.
type State struct {
	fragment  string
	route     Route
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// NewState creates a State for the fragment present at startup. An empty
// fragment is normalized to "#/" once, before anyone can subscribe, so the
// normalization is never observed as a navigation.
func NewState(initial string) *State {
	f := normalize(initial)
	if f == "" || f == "#" {
		f = HomeFragment
	}
	return &State{fragment: f, route: Parse(f)}
}

// Fragment returns the current fragment.
func (s *State) Fragment() string { return s.fragment }

// Route returns the active route.
func (s *State) Route() Route { return s.route }

// Navigate sets the fragment and recomputes the route before returning.
// Listeners run synchronously, in subscription order, and only when the
// fragment actually changed. It reports whether a change happened.
func (s *State) Navigate(fragment string) bool {
	f := normalize(fragment)
	if f == s.fragment {
		return false
	}
	s.fragment = f
	s.route = Parse(f)

	// Copy so listeners may unsubscribe while being notified.
	subs := make([]subscription, len(s.listeners))
	copy(subs, s.listeners)
	for _, sub := range subs {
		sub.fn(s.route)
	}
	return true
}

// Subscribe registers fn for route changes and returns a function that
// removes it. Calling the returned function more than once is harmless.
func (s *State) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
