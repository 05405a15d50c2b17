package styling

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/piecemeal/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	LineNumber        DrawStyling
	LineNumberCurrent DrawStyling

	Status      DrawStyling
	StatusMode  DrawStyling
	CommandLine DrawStyling
	Message     DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"normal", &stylesheet.Normal, c.Normal},
		{"line-number", &stylesheet.LineNumber, c.LineNumber},
		{"line-number-current", &stylesheet.LineNumberCurrent, c.LineNumberCurrent},
		{"status", &stylesheet.Status, c.Status},
		{"status-mode", &stylesheet.StatusMode, c.StatusMode},
		{"command-line", &stylesheet.CommandLine, c.CommandLine},
		{"message", &stylesheet.Message, c.Message},
	} {
		style, err := StyleFromConfig(entry.source)
		if err != nil {
			return nil, fmt.Errorf("invalid styling '%s': %w", entry.name, err)
		}
		log.Debug().Str("styling", entry.name).Str("style", style.ToString()).Msg("loaded styling")
		*entry.target = style
	}

	return &stylesheet, nil
}
