package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a textual key sequence specification, e.g. "ihello<esc>:w<cr>".
//
// Plain characters stand for themselves; special keys are written as an
// identifier in angle brackets (see KeyIdentifierToKey).
type Keyspec = string

var identifierKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"lt":    {Key: tcell.KeyRune, Ch: '<'},
	"gt":    {Key: tcell.KeyRune, Ch: '>'},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"tab":   {Key: tcell.KeyTab},
	"bs":    {Key: tcell.KeyBackspace2},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		identifierKeys["c-"+string(c)] = Key{Key: tcell.KeyCtrlA + tcell.Key(c-'a')}
	}
}

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	keys := make([][]rune, 0)
	specialContext := false

	for pos, r := range []rune(spec) {
		switch r {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{r})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if specialContext {
				if !unicode.IsLetter(r) && r != '-' {
					return nil,
						fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("special context ('<') not closed at end of spec")
	}

	result := make([]Key, 0, len(keys))
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %w", string(keyIdentifier), err)
			}
			result = append(result, key)
		} else {
			result = append(result, Key{Key: tcell.KeyRune, Ch: keyIdentifier[0]})
		}
	}

	return result, nil
}

// KeyspecToBytes converts a key sequence specification to the bytes the keys
// produce, see Key.Bytes.
func KeyspecToBytes(spec Keyspec) ([]byte, error) {
	keys, err := ConfigKeyspecToKeys(spec)
	if err != nil {
		return nil, err
	}
	result := make([]byte, 0, len(keys))
	for _, k := range keys {
		b := k.Bytes()
		if b == nil {
			return nil, fmt.Errorf("key %s has no byte representation", k.ToDebugString())
		}
		result = append(result, b...)
	}
	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := identifierKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier.
func ToConfigIdentifierString(k Key) (string, error) {
	switch {
	case k.Key == tcell.KeyRune && k.Ch == ' ':
		return "<space>", nil
	case k.Key == tcell.KeyRune && k.Ch == '<':
		return "<lt>", nil
	case k.Key == tcell.KeyRune && k.Ch == '>':
		return "<gt>", nil
	case k.Key == tcell.KeyRune:
		return string(k.Ch), nil
	}

	// control keys share values (e.g. <tab> and <c-i>), prefer the named ones
	for _, name := range []string{"cr", "esc", "tab", "bs", "c-space", "c-bs"} {
		if identifierKeys[name].Key == k.Key {
			return "<" + name + ">", nil
		}
	}
	for c := 'a'; c <= 'z'; c++ {
		if tcell.KeyCtrlA+tcell.Key(c-'a') == k.Key {
			return "<c-" + string(c) + ">", nil
		}
	}
	return "", fmt.Errorf("undescribable key %s", k.ToDebugString())
}
