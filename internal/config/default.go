package config

// DefaultFile is the file edited when none is given.
const DefaultFile = "file.txt"

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	relative := true
	return Config{
		Editor: Editor{
			TabWidth:            4,
			DefaultFile:         DefaultFile,
			RelativeLineNumbers: &relative,
		},
		Stylesheet: defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LineNumber:        Styling{Fg: "#8a8a8a", Bg: "#ffffff", Style: &FontStyle{}},
			LineNumberCurrent: Styling{Fg: "#404040", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			StatusMode:        Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			CommandLine:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Message:           Styling{Fg: "#404040", Bg: "#f0f0f0", Style: &FontStyle{Italic: true}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LineNumber:        Styling{Fg: "#8a8a8a", Bg: "#000000", Style: &FontStyle{}},
		LineNumberCurrent: Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		StatusMode:        Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		CommandLine:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		Message:           Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{Italic: true}},
	}
}
