// Package option defines the label/value pairs offered by a select widget.
package option

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidValue is returned when a decoded value is neither a string nor a
// number.
var ErrInvalidValue = errors.New("option value must be a string or number")

// Kind distinguishes string values from numeric ones.
type Kind int

const (
	// KindNone is the zero Value, one that was never set.
	KindNone Kind = iota
	KindString
	KindNumber
)

// Value is the value carried by an Option: either a string or a number.
// The zero Value holds neither.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Kind reports whether the value is a string or a number.
func (v Value) Kind() Kind {
	return v.kind
}

// IsZero reports whether v was never set.
func (v Value) IsZero() bool {
	return v.kind == KindNone
}

// Float returns the numeric value and whether v is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// String renders the value the way it would appear in a catalog file.
func (v Value) String() string {
	if v.kind == KindNumber {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// UnmarshalYAML accepts a string or numeric scalar. Integer and float tags
// become numbers. Booleans, timestamps and collections are rejected; quote
// them to use the text as a string.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: got %s at line %d", ErrInvalidValue, nodeKind(node.Kind), node.Line)
	}

	switch tag := node.ShortTag(); tag {
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q at line %d: %w", node.Value, node.Line, err)
		}
		*v = Number(n)
	case "!!str":
		*v = String(node.Value)
	default:
		return fmt.Errorf("%w: got %s %q at line %d", ErrInvalidValue, tag, node.Value, node.Line)
	}
	return nil
}

// MarshalYAML writes numbers as numbers and strings as strings.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindString:
		return v.str, nil
	}
	return nil, nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (v *Value) UnmarshalTOML(data interface{}) error {
	switch d := data.(type) {
	case string:
		*v = String(d)
	case int64:
		*v = Number(float64(d))
	case float64:
		*v = Number(d)
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidValue, data)
	}
	return nil
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return "scalar"
}

// Option is a label/value pair offered for selection.
//
// Options are passed around as pointers and compared by identity: two
// options with the same label and value are still different options.
type Option struct {
	Label string `yaml:"label" toml:"label"`
	Value Value  `yaml:"value" toml:"value"`
}

// New returns a new option.
func New(label string, value Value) *Option {
	return &Option{Label: label, Value: value}
}

// IndexOf returns the position of o in list, or -1.
func IndexOf(list []*Option, o *Option) int {
	for i, candidate := range list {
		if candidate == o {
			return i
		}
	}
	return -1
}

// Contains reports whether list holds o itself.
func Contains(list []*Option, o *Option) bool {
	return IndexOf(list, o) >= 0
}

// Without returns a new slice with every occurrence of o removed.
func Without(list []*Option, o *Option) []*Option {
	out := make([]*Option, 0, len(list))
	for _, candidate := range list {
		if candidate != o {
			out = append(out, candidate)
		}
	}
	return out
}

// Labels returns the labels of list in order.
func Labels(list []*Option) []string {
	labels := make([]string, len(list))
	for i, o := range list {
		labels[i] = o.Label
	}
	return labels
}
