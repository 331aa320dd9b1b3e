// Package main is the entry point for the dropdown demo.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/dropdown/internal/catalog"
	"github.com/hy4ri/dropdown/internal/config"
	"github.com/hy4ri/dropdown/internal/logging"
	"github.com/hy4ri/dropdown/internal/option"
	"github.com/hy4ri/dropdown/internal/tui"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

const configTemplate = `# Dropdown demo configuration
# Location: ~/.config/dropdown-demo/config.yaml

ui:
  # j/k move through an open list (default: true)
  vim_mode: true

  # Typing while a list is open jumps to the best matching option (default: true)
  type_ahead: true

  # Outer width of each select
  width: 40

# Optional YAML or TOML file with the options to offer, relative to this file.
# catalog: catalog.yaml

log:
  # Debug log file; nothing is logged when empty
  # path: ""
  level: info
`

type options struct {
	configPath  string
	catalogPath string
	logPath     string
	debug       bool
	initConfig  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dropdown-demo",
		Short: "Single and multi select dropdowns in the terminal",
		Long: `dropdown-demo shows a multi select and a single select over the same options.

Tab moves between the selects, Enter/Space or the arrow keys open a list,
Esc closes it, and the mouse works too: click to open or pick, click a
badge to remove it, click × to clear.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.initConfig {
				return createConfigTemplate(opts.configPath)
			}
			return runApp(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/dropdown-demo/config.yaml)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "YAML or TOML file with the options to offer")
	flags.StringVar(&opts.logPath, "log-file", "", "write a debug log to this file")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level (to --log-file or the data directory)")
	flags.BoolVar(&opts.initConfig, "init", false, "create a template config file")

	return cmd
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	p, err := config.ConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return p, nil
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	path, err := resolveConfigPath(path)
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// loadOptions returns the catalog named by the flag or config, or the
// built-in one.
func loadOptions(flagPath string, cfg *config.Config) ([]*option.Option, error) {
	path := flagPath
	if path == "" {
		path = cfg.Catalog
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// runApp starts the main TUI application.
func runApp(opts options) error {
	path, err := resolveConfigPath(opts.configPath)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.logPath != "" {
		cfg.Log.Path = opts.logPath
	}
	if opts.debug {
		cfg.Log.Level = "debug"
		if cfg.Log.Path == "" {
			if cfg.Log.Path, err = config.DefaultLogPath(); err != nil {
				return err
			}
		}
	}

	logger, closeLog, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	items, err := loadOptions(opts.catalogPath, cfg)
	if err != nil {
		return err
	}
	logger.Info("starting", "version", version, "options", len(items))

	app := tui.NewApp(cfg, items, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
