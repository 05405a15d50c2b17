package input_test

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/piecemeal/internal/input"
)

func TestConfigKeyspecToKey(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		expectValid := func(s input.Keyspec) []input.Key {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err != nil {
				t.Error("unexpected error on valid spec:", err.Error())
			}
			if keys == nil {
				t.Error("unexpected nil keyspec on valid spec")
			}
			return keys
		}

		t.Run("empty", func(t *testing.T) {
			keys := expectValid("")
			if len(keys) != 0 {
				t.Error("expected empty seq of keys")
			}
		})

		t.Run("single", func(t *testing.T) {
			keys := expectValid("x")
			if len(keys) != 1 {
				t.Fatal("expected single key")
			}
			if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) {
				t.Error("expected single key to be 'x'")
			}
		})

		t.Run("special", func(t *testing.T) {
			for spec, expected := range map[string]input.Key{
				"<c-a>":   {Key: tcell.KeyCtrlA},
				"<C-W>":   {Key: tcell.KeyCtrlW},
				"<space>": {Key: tcell.KeyRune, Ch: ' '},
				"<esc>":   {Key: tcell.KeyESC},
				"<lt>":    {Key: tcell.KeyRune, Ch: '<'},
			} {
				t.Run(spec, func(t *testing.T) {
					keys := expectValid(spec)
					if len(keys) != 1 {
						t.Fatal("expected single key")
					}
					if keys[0] != expected {
						t.Errorf("expected %s, got %s", expected.ToDebugString(), keys[0].ToDebugString())
					}
				})
			}
		})

		t.Run("sequence", func(t *testing.T) {
			keys := expectValid("x<c-w>ü")
			expected := []input.Key{
				{Key: tcell.KeyRune, Ch: 'x'},
				{Key: tcell.KeyCtrlW},
				{Key: tcell.KeyRune, Ch: 'ü'},
			}
			if len(keys) != len(expected) {
				t.Fatal("expected three keys, got", keys)
			}
			for i := range expected {
				if keys[i] != expected[i] {
					t.Errorf("key %d: expected %s, got %s", i, expected[i].ToDebugString(), keys[i].ToDebugString())
				}
			}
		})
	})

	t.Run("invalid", func(t *testing.T) {
		expectInvalid := func(s input.Keyspec) {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err == nil {
				t.Error("unexpectedly no err on invalid spec")
			}
			if keys != nil {
				t.Error("unexpected key seq on invalid spec:", keys)
			}
		}

		t.Run("unopened special", func(t *testing.T) {
			expectInvalid("c-w>")
		})
		t.Run("unclosed special (EOL)", func(t *testing.T) {
			expectInvalid("<c-w")
		})
		t.Run("unclosed special (double open)", func(t *testing.T) {
			expectInvalid("<c-w<c-a>")
		})
		t.Run("wrong delimiter in special", func(t *testing.T) {
			expectInvalid("<c+a>")
		})
		t.Run("unknown identifier", func(t *testing.T) {
			expectInvalid("<hyper>")
		})
	})

}

func TestKeyBytes(t *testing.T) {
	for name, tc := range map[string]struct {
		key      input.Key
		expected []byte
	}{
		"rune":       {input.Key{Key: tcell.KeyRune, Ch: 'a'}, []byte("a")},
		"multibyte":  {input.Key{Key: tcell.KeyRune, Ch: 'é'}, []byte("é")},
		"enter":      {input.Key{Key: tcell.KeyEnter}, []byte{'\r'}},
		"escape":     {input.Key{Key: tcell.KeyESC}, []byte{0x1b}},
		"tab":        {input.Key{Key: tcell.KeyTab}, []byte{'\t'}},
		"backspace":  {input.Key{Key: tcell.KeyBackspace}, []byte{0x08}},
		"backspace2": {input.Key{Key: tcell.KeyBackspace2}, []byte{0x7f}},
		"ctrl-c":     {input.Key{Key: tcell.KeyCtrlC, Mod: tcell.ModCtrl}, []byte{0x03}},
		"arrow":      {input.Key{Key: tcell.KeyLeft}, nil},
	} {
		t.Run(name, func(t *testing.T) {
			got := tc.key.Bytes()
			if !bytes.Equal(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestFromTcell(t *testing.T) {
	k := input.FromTcell(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if (k != input.Key{Key: tcell.KeyRune, Ch: 'q'}) {
		t.Error("unexpected key", k.ToDebugString())
	}
	k = input.FromTcell(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !bytes.Equal(k.Bytes(), []byte{'\r'}) {
		t.Error("expected enter to produce CR, got", k.Bytes())
	}
}

func TestKeyspecToBytes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := input.KeyspecToBytes("ihi<esc>:w<cr>")
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if !bytes.Equal(got, []byte("ihi\x1b:w\r")) {
			t.Errorf("unexpected bytes %q", got)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		if _, err := input.KeyspecToBytes("<esc"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestToConfigIdentifierString(t *testing.T) {
	for _, spec := range []string{"x", "<space>", "<cr>", "<esc>", "<tab>", "<bs>", "<c-bs>", "<c-w>", "<lt>"} {
		keys, err := input.ConfigKeyspecToKeys(spec)
		if err != nil || len(keys) != 1 {
			t.Fatal("could not parse", spec, err)
		}
		got, err := input.ToConfigIdentifierString(keys[0])
		if err != nil {
			t.Error("unexpected error for", spec, err)
		}
		if got != spec {
			t.Errorf("expected %s, got %s", spec, got)
		}
	}

	if _, err := input.ToConfigIdentifierString(input.Key{Key: tcell.KeyF1}); err == nil {
		t.Error("expected error for undescribable key")
	}
}
