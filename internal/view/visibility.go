package view

import "fmt"

// ItemKey identifies one paper item for visibility purposes. Keys are
// positional, so they are stable for the lifetime of a build.
type ItemKey string

// JobMarketKey is the key of the job-market paper.
const JobMarketKey ItemKey = "jmp"

// WorkingPaperKey returns the key of the i-th working paper.
func WorkingPaperKey(i int) ItemKey { return ItemKey(fmt.Sprintf("wp-%d", i)) }

// WorkInProgressKey returns the key of the i-th work in progress.
func WorkInProgressKey(i int) ItemKey { return ItemKey(fmt.Sprintf("wip-%d", i)) }

// DefaultExpanded is the abstract visibility of an item nobody has toggled:
// the job-market paper starts open, everything else starts closed.
func DefaultExpanded(key ItemKey) bool { return key == JobMarketKey }

// Visibility maps paper items to whether their abstract is shown. The zero
// value has every item at its default. Not safe for concurrent use.
type Visibility struct {
	flags map[ItemKey]bool
}

// NewVisibility returns a state where every item has its default.
func NewVisibility() *Visibility {
	return &Visibility{flags: make(map[ItemKey]bool)}
}

// Expanded reports whether key's abstract is shown. A nil Visibility
// answers with the defaults.
func (v *Visibility) Expanded(key ItemKey) bool {
	if v != nil {
		if open, ok := v.flags[key]; ok {
			return open
		}
	}
	return DefaultExpanded(key)
}

// Toggle flips key's visibility and returns the new value. No other key is
// affected.
func (v *Visibility) Toggle(key ItemKey) bool {
	open := !v.Expanded(key)
	v.Set(key, open)
	return open
}

// Set pins key's visibility.
func (v *Visibility) Set(key ItemKey, expanded bool) {
	if v.flags == nil {
		v.flags = make(map[ItemKey]bool)
	}
	v.flags[key] = expanded
}
