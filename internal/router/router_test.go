package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParse(t *testing.T) {
	tests := []struct {
		fragment string
		want     Route
	}{
		{"", Home},
		{"#", Home},
		{"#/", Home},
		{"#/home", Home},
		{"#/unknown", Home},
		{"#research", Home},
		{"#/Research", Home},
		{"research", Home},
		{"#/research", Research},
		{"#/research/jmp", Research},
		{"#/researchers", Research},
		{"/research", Research},
		{"#/teaching", Teaching},
		{"#/teaching?term=2024", Teaching},
		{"/teaching", Teaching},
	}
	for _, tt := range tests {
		if got := Parse(tt.fragment); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.fragment, got, tt.want)
		}
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	for _, r := range Routes {
		if got := Parse(r.Fragment()); got != r {
			t.Errorf("Parse(%q.Fragment()) = %q", r, got)
		}
	}
	if Route("bogus").Fragment() != HomeFragment {
		t.Error("unknown route should map to the home fragment")
	}
}

func TestNewStateNormalizesEmptyFragment(t *testing.T) {
	for _, initial := range []string{"", "#"} {
		s := NewState(initial)
		if s.Fragment() != "#/" {
			t.Errorf("NewState(%q).Fragment() = %q, want %q", initial, s.Fragment(), "#/")
		}
		if s.Route() != Home {
			t.Errorf("NewState(%q).Route() = %q, want home", initial, s.Route())
		}
	}

	s := NewState("#/teaching")
	if s.Fragment() != "#/teaching" || s.Route() != Teaching {
		t.Errorf("NewState kept %q/%q, want #/teaching/teaching", s.Fragment(), s.Route())
	}
}

func TestNavigateNotifiesInOrder(t *testing.T) {
	s := NewState("")

	var got []string
	s.Subscribe(func(r Route) { got = append(got, "a:"+string(r)) })
	s.Subscribe(func(r Route) { got = append(got, "b:"+string(r)) })

	if !s.Navigate("#/research") {
		t.Fatal("Navigate to a new fragment should report a change")
	}
	if s.Route() != Research {
		t.Fatalf("route = %q, want research", s.Route())
	}
	s.Navigate("#/nowhere")

	want := []string{"a:research", "b:research", "a:home", "b:home"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigateSameFragmentIsSilent(t *testing.T) {
	s := NewState("#/research")
	calls := 0
	s.Subscribe(func(Route) { calls++ })

	if s.Navigate("#/research") {
		t.Error("Navigate to the current fragment should report no change")
	}
	if calls != 0 {
		t.Errorf("listener called %d times, want 0", calls)
	}

	// A different fragment with the same route is still a navigation.
	s.Navigate("#/research/wp")
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := NewState("")
	var a, b int
	unsubA := s.Subscribe(func(Route) { a++ })
	s.Subscribe(func(Route) { b++ })

	s.Navigate("#/research")
	unsubA()
	unsubA()
	s.Navigate("#/teaching")

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want a=1 b=2", a, b)
	}
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	s := NewState("")
	calls := 0
	var unsub func()
	unsub = s.Subscribe(func(Route) {
		calls++
		unsub()
	})
	s.Navigate("#/research")
	s.Navigate("#/teaching")
	if calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", calls)
	}
}
