package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/wordfield/wordfield/pkg/pipeline"
)

// configFileName is the project config file looked up in the working directory.
const configFileName = "wordfield.toml"

// projectConfig holds defaults loaded from wordfield.toml. Flags set on
// the command line always win over file values.
type projectConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	Strategy     string  `toml:"strategy"`
	Spiral       string  `toml:"spiral"`
	RotationFrom float64 `toml:"rotation_from"`
	RotationTo   float64 `toml:"rotation_to"`
	Orientations int     `toml:"orientations"`
	MaxFontSize  float64 `toml:"max_font_size"`
	FontFamily   string  `toml:"font_family"`
	Seed         uint64  `toml:"seed"`
	Style        string  `toml:"style"`
}

// loadProjectConfig reads wordfield.toml from the working directory.
// A missing file is not an error and returns nil.
func loadProjectConfig() (*projectConfig, error) {
	data, err := os.ReadFile(configFileName)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", configFileName, err)
	}

	var cfg projectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFileName, err)
	}
	return &cfg, nil
}

// applyProjectConfig copies config values onto opts for every layout or
// render flag the user did not set explicitly.
func applyProjectConfig(cmd *cobra.Command, cfg *projectConfig, opts *pipeline.Options) {
	if cfg == nil {
		return
	}

	flags := cmd.Flags()
	set := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && !f.Changed
	}

	if cfg.Width != 0 && set("width") {
		opts.Width = cfg.Width
	}
	if cfg.Height != 0 && set("height") {
		opts.Height = cfg.Height
	}
	if cfg.Strategy != "" && set("strategy") {
		opts.Strategy = cfg.Strategy
	}
	if cfg.Spiral != "" && set("spiral") {
		opts.Spiral = cfg.Spiral
	}
	if (cfg.RotationFrom != 0 || cfg.RotationTo != 0 || cfg.Orientations != 0) &&
		set("rotation-from") && set("rotation-to") && set("orientations") {
		opts.RotationFrom = cfg.RotationFrom
		opts.RotationTo = cfg.RotationTo
		opts.Orientations = cfg.Orientations
	}
	if cfg.MaxFontSize != 0 && set("max-font-size") {
		opts.MaxFontSize = cfg.MaxFontSize
	}
	if cfg.FontFamily != "" && set("font-family") {
		opts.FontFamily = cfg.FontFamily
	}
	if cfg.Seed != 0 && set("seed") {
		opts.Seed = cfg.Seed
	}
	if cfg.Style != "" && set("style") {
		opts.Style = cfg.Style
	}
}
