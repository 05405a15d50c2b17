package styling

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/piecemeal/internal/config"
)

func TestLighten(t *testing.T) {
	input := colorful.Color{
		R: float64(0x12) / 255.0,
		G: float64(0x34) / 255.0,
		B: float64(0x56) / 255.0,
	}

	t.Run("0% -> no change", func(t *testing.T) {
		result := lightenColorfulColor(input, 0)
		if !result.AlmostEqualRgb(input) {
			t.Errorf("%s instead of %s", result.Hex(), input.Hex())
		}
	})

	t.Run("100% -> white", func(t *testing.T) {
		expected := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
		result := lightenColorfulColor(input, 100)
		if !result.AlmostEqualRgb(expected) {
			t.Errorf("%s instead of %s", result.Hex(), expected.Hex())
		}
	})
}

func TestLightenedBG(t *testing.T) {
	s, err := StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	t.Run("0% -> no change", func(t *testing.T) {
		if s.LightenedBG(0).bg.Hex() != "#000000" {
			t.Error("expected unchanged background, got", s.LightenedBG(0).bg.Hex())
		}
	})

	t.Run("100% -> white", func(t *testing.T) {
		if s.LightenedBG(100).bg.Hex() != "#ffffff" {
			t.Error("expected white background, got", s.LightenedBG(100).bg.Hex())
		}
	})

	t.Run("foreground untouched", func(t *testing.T) {
		if s.LightenedBG(50).fg.Hex() != "#ffffff" {
			t.Error("expected unchanged foreground, got", s.LightenedBG(50).fg.Hex())
		}
	})
}

func TestBolded(t *testing.T) {
	s, err := StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	_, _, attrs := s.Bolded().AsTcell().Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("expected bolded styling to be bold")
	}
	if s.bold {
		t.Error("expected original styling to be unchanged")
	}
}

func TestToString(t *testing.T) {
	s, err := StyleFromConfig(config.Styling{Fg: "#ff0000", Bg: "#000000", Style: &config.FontStyle{Italic: true}})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	expected := "[fg:'#ff0000' bg:'#000000' (b:false i:true u:false)]"
	if s.ToString() != expected {
		t.Errorf("expected %s, got %s", expected, s.ToString())
	}
}

func TestStyleFromHex(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := StyleFromHex("#ff0000", "#000")
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		fg, bg, _ := s.AsTcell().Decompose()
		if fg != tcell.NewHexColor(0xff0000) {
			t.Errorf("unexpected fg %v", fg)
		}
		if bg != tcell.NewHexColor(0x000000) {
			t.Errorf("unexpected bg %v", bg)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := StyleFromHex("red", "#000000"); err == nil {
			t.Error("expected error for non-hex color")
		}
	})
}

func TestNewStylesheetFromConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		stylesheet, err := NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		_, _, attrs := stylesheet.StatusMode.AsTcell().Decompose()
		if attrs&tcell.AttrBold == 0 {
			t.Error("expected status mode to be bold")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		c := config.Default(config.Dark).Stylesheet
		c.Message.Fg = "#zzz"
		if _, err := NewStylesheetFromConfig(c); err == nil {
			t.Error("expected error for invalid message styling")
		}
	})
}
