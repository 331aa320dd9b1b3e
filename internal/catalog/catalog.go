// Package catalog loads the set of options offered by the demo's selects.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hy4ri/dropdown/internal/option"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrEmptyCatalog is returned when a catalog file has no options.
	ErrEmptyCatalog = errors.New("catalog has no options")

	// ErrEmptyLabel is returned for an option without a label.
	ErrEmptyLabel = errors.New("option label is empty")

	// ErrMissingValue is returned for an option without a value.
	ErrMissingValue = errors.New("option value is missing")

	// ErrDuplicateValue is returned when two options share a value.
	ErrDuplicateValue = errors.New("duplicate option value")
)

// file is the on-disk shape shared by the YAML and TOML formats.
type file struct {
	Options []option.Option `yaml:"options" toml:"options"`
}

// Default returns the built-in demo catalog.
func Default() []*option.Option {
	return []*option.Option{
		option.New("First 1", option.Number(1)),
		option.New("Second 1", option.Number(2)),
		option.New("Third 1", option.Number(3)),
		option.New("Fourth 1", option.Number(4)),
		option.New("Fifth 1", option.Number(5)),
	}
}

// Load reads a catalog from path. The format is chosen by extension.
func Load(path string) ([]*option.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	opts, err := build(f.Options)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return opts, nil
}

// build validates the decoded entries and gives each one its own identity.
func build(entries []option.Option) ([]*option.Option, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]int, len(entries))
	opts := make([]*option.Option, 0, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			return nil, fmt.Errorf("option %d: %w", i, ErrEmptyLabel)
		}
		if e.Value.IsZero() {
			return nil, fmt.Errorf("option %d (%s): %w", i, e.Label, ErrMissingValue)
		}

		key := fmt.Sprintf("%d:%s", e.Value.Kind(), e.Value.String())
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("option %d repeats value %q of option %d: %w", i, e.Value.String(), prev, ErrDuplicateValue)
		}
		seen[key] = i

		opts = append(opts, option.New(e.Label, e.Value))
	}
	return opts, nil
}
