package components

import "github.com/hy4ri/dropdown/internal/option"

// NextSingle returns the value a single select proposes when o is picked.
// Picking the current value again proposes nothing.
func NextSingle(current, o *option.Option) (*option.Option, bool) {
	if o == current {
		return current, false
	}
	return o, true
}

// NextMulti returns the value a multi select proposes when o is picked.
// An absent option is appended. A present option is removed when remove is
// set and left alone otherwise. The result never aliases current.
func NextMulti(current []*option.Option, o *option.Option, remove bool) ([]*option.Option, bool) {
	if option.Contains(current, o) {
		if !remove {
			return current, false
		}
		return option.Without(current, o), true
	}

	next := make([]*option.Option, len(current), len(current)+1)
	copy(next, current)
	return append(next, o), true
}
