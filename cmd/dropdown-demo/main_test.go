package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hy4ri/dropdown/internal/config"
	"gopkg.in/yaml.v3"
)

func TestConfigTemplateParses(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := yaml.Unmarshal([]byte(configTemplate), cfg); err != nil {
		t.Fatalf("template is not valid YAML: %v", err)
	}
	if !cfg.UI.VimMode || !cfg.UI.TypeAhead || cfg.UI.Width != 40 {
		t.Errorf("template should spell out the defaults, got %+v", cfg.UI)
	}
}

func TestCreateConfigTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := createConfigTemplate(path); err != nil {
		t.Fatalf("createConfigTemplate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != configTemplate {
		t.Error("written file differs from the template")
	}
}

func TestCreateConfigTemplateMakesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "some", "new", "dir", "config.yaml")
	if err := createConfigTemplate(path); err != nil {
		t.Fatalf("createConfigTemplate: %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("config dir mode = %o, want 700", perm)
	}
	if _, err := config.LoadFrom(path); err != nil {
		t.Errorf("written template should load: %v", err)
	}
}

func TestLoadOptions(t *testing.T) {
	cfg := config.DefaultConfig()

	opts, err := loadOptions("", cfg)
	if err != nil || len(opts) != 5 {
		t.Fatalf("expected the built-in catalog, got %d options, err %v", len(opts), err)
	}

	dir := t.TempDir()
	fromConfig := filepath.Join(dir, "config.toml")
	fromFlag := filepath.Join(dir, "flag.yaml")
	os.WriteFile(fromConfig, []byte("[[options]]\nlabel = \"cfg\"\nvalue = 1\n"), 0600)
	os.WriteFile(fromFlag, []byte("options:\n  - label: flag\n    value: 1\n"), 0600)

	cfg.Catalog = fromConfig
	opts, err = loadOptions("", cfg)
	if err != nil || opts[0].Label != "cfg" {
		t.Fatalf("expected the config catalog, got %v, err %v", opts, err)
	}

	opts, err = loadOptions(fromFlag, cfg)
	if err != nil || opts[0].Label != "flag" {
		t.Fatalf("the flag should win over the config, got %v, err %v", opts, err)
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(new(strings.Builder))
	cmd.SetErr(new(strings.Builder))
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for positional arguments")
	}
}

func TestRootCmdVersion(t *testing.T) {
	cmd := newRootCmd()
	out := new(strings.Builder)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("expected version in output, got %q", out.String())
	}
}
