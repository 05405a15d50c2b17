package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${PIECEMEAL_HOME}/config.yaml'.
type Config struct {
	Editor     Editor     `yaml:"editor"`
	Stylesheet Stylesheet `yaml:"stylesheet"`
}

// Editor holds the editing behavior settings.
type Editor struct {
	TabWidth            int    `yaml:"tab-width,omitempty"`
	DefaultFile         string `yaml:"default-file,omitempty"`
	RelativeLineNumbers *bool  `yaml:"relative-line-numbers,omitempty"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	LineNumber        Styling `yaml:"line-number"`
	LineNumberCurrent Styling `yaml:"line-number-current"`
	Status            Styling `yaml:"status"`
	StatusMode        Styling `yaml:"status-mode"`
	CommandLine       Styling `yaml:"command-line"`
	Message           Styling `yaml:"message"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	var defaultConfig Config
	switch defaultTheme {
	case Light:
		defaultConfig = Default(Light)
	default:
		defaultConfig = Default(Dark)
	}

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Editor = base.Editor.augmentWith(augment.Editor)
	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base Editor) augmentWith(augment Editor) Editor {
	result := base

	if augment.TabWidth > 0 {
		result.TabWidth = augment.TabWidth
	}
	if augment.DefaultFile != "" {
		result.DefaultFile = augment.DefaultFile
	}
	if augment.RelativeLineNumbers != nil {
		relative := *augment.RelativeLineNumbers
		result.RelativeLineNumbers = &relative
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.LineNumber.overwriteIfDefined(augment.LineNumber)
	result.LineNumberCurrent.overwriteIfDefined(augment.LineNumberCurrent)
	result.Status.overwriteIfDefined(augment.Status)
	result.StatusMode.overwriteIfDefined(augment.StatusMode)
	result.CommandLine.overwriteIfDefined(augment.CommandLine)
	result.Message.overwriteIfDefined(augment.Message)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// UsesRelativeLineNumbers tells whether the line number gutter shows distances
// to the cursor line.
func (e Editor) UsesRelativeLineNumbers() bool {
	return e.RelativeLineNumbers == nil || *e.RelativeLineNumbers
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
