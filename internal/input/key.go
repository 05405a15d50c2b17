// Package input translates terminal key events and textual key specifications
// into the byte stream an edit session consumes.
package input

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press, as delivered by the terminal.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// FromTcell converts a tcell key event to a Key.
func FromTcell(e *tcell.EventKey) Key {
	k := Key{Mod: e.Modifiers(), Key: e.Key()}
	if k.Key == tcell.KeyRune {
		k.Ch = e.Rune()
	}
	return k
}

// Bytes returns the bytes this key produces on the session's input stream.
// Runes are UTF-8 encoded, control keys (enter, escape, tab, backspace and the
// ctrl-letter combinations) become their ASCII control byte.
// Keys without a byte representation, such as arrow keys, yield nil.
func (k Key) Bytes() []byte {
	switch {
	case k.Key == tcell.KeyRune:
		return utf8.AppendRune(nil, k.Ch)
	case k.Key < 0x20 || k.Key == tcell.KeyDEL:
		return []byte{byte(k.Key)}
	default:
		return nil
	}
}

// ToDebugString returns a string representation of the key for logging.
func (k Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}
