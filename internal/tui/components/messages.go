package components

import "github.com/hy4ri/dropdown/internal/option"

// SelectChangedMsg proposes a new value for a select. The select does not
// apply it; its owner decides and pushes the result back with SetValue or
// SetValues.
type SelectChangedMsg struct {
	ID       string
	Multiple bool

	// Value is the proposed single-mode value. nil clears it.
	Value *option.Option

	// Values is the proposed multi-mode value, never nil.
	Values []*option.Option
}
