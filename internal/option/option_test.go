package option

import (
	"errors"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

func TestIdentityMembership(t *testing.T) {
	a := New("A", Number(1))
	twin := New("A", Number(1))
	b := New("B", Number(2))
	list := []*Option{a, b}

	if !Contains(list, a) {
		t.Error("expected list to contain a")
	}
	if Contains(list, twin) {
		t.Error("an equal-looking option with a different identity must not match")
	}
	if got := IndexOf(list, b); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
}

func TestWithoutKeepsOrderAndLeavesInputAlone(t *testing.T) {
	a, b, c := New("A", Number(1)), New("B", Number(2)), New("C", Number(3))
	list := []*Option{a, b, c}

	got := Without(list, b)
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Without(b) = %v, want [A C]", Labels(got))
	}
	if len(list) != 3 || list[1] != b {
		t.Error("Without must not modify its input")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(1), "1"},
		{Number(2.5), "2.5"},
		{String("abc"), "abc"},
		{String(""), ""},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueUnmarshalYAML(t *testing.T) {
	var doc struct {
		Options []Option `yaml:"options"`
	}
	src := `
options:
  - label: one
    value: 1
  - label: quoted
    value: "1"
  - label: word
    value: hello
  - label: frac
    value: 0.5
`
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if n, ok := doc.Options[0].Value.Float(); !ok || n != 1 {
		t.Errorf("options[0] = %v, want number 1", doc.Options[0].Value)
	}
	if doc.Options[1].Value.Kind() != KindString || doc.Options[1].Value.String() != "1" {
		t.Errorf("quoted value should stay a string, got %v", doc.Options[1].Value)
	}
	if doc.Options[2].Value.String() != "hello" {
		t.Errorf("options[2] = %v, want hello", doc.Options[2].Value)
	}
	if n, _ := doc.Options[3].Value.Float(); n != 0.5 {
		t.Errorf("options[3] = %v, want 0.5", doc.Options[3].Value)
	}
}

func TestValueUnmarshalYAMLRejectsCollections(t *testing.T) {
	var o Option
	err := yaml.Unmarshal([]byte("label: x\nvalue: [1, 2]\n"), &o)
	if err == nil {
		t.Fatal("expected an error for a sequence value")
	}
}

func TestValueUnmarshalYAMLRejectsNonStringScalars(t *testing.T) {
	for _, src := range []string{
		"label: x\nvalue: true\n",
		"label: x\nvalue: 2024-01-02\n",
	} {
		var o Option
		if err := yaml.Unmarshal([]byte(src), &o); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Unmarshal(%q) error = %v, want ErrInvalidValue", src, err)
		}
	}

	var o Option
	if err := yaml.Unmarshal([]byte("label: x\nvalue: \"true\"\n"), &o); err != nil {
		t.Fatalf("a quoted boolean is a string: %v", err)
	}
	if o.Value.Kind() != KindString || o.Value.String() != "true" {
		t.Errorf("value = %v, want string true", o.Value)
	}
}

func TestValueZero(t *testing.T) {
	var o Option
	if err := yaml.Unmarshal([]byte("label: x\nvalue: ~\n"), &o); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !o.Value.IsZero() {
		t.Errorf("a null value should leave the value unset, got %v", o.Value)
	}
	if String("").IsZero() || Number(0).IsZero() {
		t.Error("empty string and zero are set values")
	}
}

func TestValueUnmarshalTOMLRejectsBool(t *testing.T) {
	var o Option
	if _, err := toml.Decode("label = \"x\"\nvalue = true\n", &o); err == nil {
		t.Error("expected an error for a boolean value")
	}
}

func TestValueUnmarshalTOML(t *testing.T) {
	var doc struct {
		Options []Option `toml:"options"`
	}
	src := `
[[options]]
label = "int"
value = 3

[[options]]
label = "str"
value = "three"
`
	if _, err := toml.Decode(src, &doc); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n, ok := doc.Options[0].Value.Float(); !ok || n != 3 {
		t.Errorf("options[0] = %v, want number 3", doc.Options[0].Value)
	}
	if doc.Options[1].Value.Kind() != KindString {
		t.Errorf("options[1] kind = %v, want string", doc.Options[1].Value.Kind())
	}
}
