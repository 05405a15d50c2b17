package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/piecemeal/internal/config"
)

// DrawStyling is style information used for rendering text: foreground and
// background color as well as modifiers such as italicization.
// It is converted to a renderer's styling, e.g. via AsTcell.
type DrawStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s DrawStyling) AsTcell() tcell.Style {
	fg := colorfulColorToTcellColor(s.fg)
	bg := colorfulColorToTcellColor(s.bg)

	style := tcell.StyleDefault.Foreground(fg).Background(bg)

	style = style.Bold(s.bold).Italic(s.italic).Underline(s.underlined)

	return style
}

// LightenedBG returns a copy of this styling with the background color
// lightened by the requested percentage.
func (s DrawStyling) LightenedBG(percentage int) DrawStyling {
	s.bg = lightenColorfulColor(s.bg, percentage)
	return s
}

// Bolded returns a copy of this styling which is guaranteed to be bolded.
func (s DrawStyling) Bolded() DrawStyling {
	s.bold = true
	return s
}

// ToString returns a string representation of this styling, e.g., for logging
// purposes.
func (s DrawStyling) ToString() string {
	return fmt.Sprintf(
		"[fg:'%s' bg:'%s' (b:%t i:%t u:%t)]",
		s.fg.Hex(),
		s.bg.Hex(),
		s.bold,
		s.italic,
		s.underlined,
	)
}

// StyleFromHex constructs a styling from two hexadecimally formatted strings
// for the foreground and background color.
// Strings have to have hexadecimal or HTML color notation and lead with a '#'.
//
// Examples:
//   - '#ff0000'
//   - '#fff'
//   - '#BEEF42'
func StyleFromHex(fg, bg string) (DrawStyling, error) {
	fgColor, err := colorfulColorFromHexString(fg)
	if err != nil {
		return DrawStyling{}, err
	}
	bgColor, err := colorfulColorFromHexString(bg)
	if err != nil {
		return DrawStyling{}, err
	}
	return DrawStyling{fg: fgColor, bg: bgColor}, nil
}

// StyleFromConfig constructs a styling from a config styling.
func StyleFromConfig(c config.Styling) (DrawStyling, error) {
	s, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		return DrawStyling{}, err
	}
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s, nil
}
