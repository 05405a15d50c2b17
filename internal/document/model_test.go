package document_test

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/ja-he/piecemeal/internal/document"
)

// flat is the reference model: a plain byte slice edited in place.
type flat []byte

func (f flat) insert(offset int, b byte) flat {
	return slices.Insert(f, offset, b)
}

func (f flat) delete(offset, count int) flat {
	return slices.Delete(f, offset, offset+count)
}

func applyAndCompare(t *testing.T, d *document.Document, ref flat, ops []byte) {
	t.Helper()
	for i := 0; i+2 < len(ops); i += 3 {
		offset := int(ops[i+1]) % (len(ref) + 1)
		switch ops[i] % 3 {
		case 0, 1:
			b := ops[i+2]
			if b%4 == 0 {
				b = '\n'
			}
			d.Insert(offset, b)
			ref = ref.insert(offset, b)
		case 2:
			count := int(ops[i+2]) % (len(ref) - offset + 1)
			d.Delete(offset, count)
			ref = ref.delete(offset, count)
		}
		if !bytes.Equal(d.Materialize(), ref) {
			t.Fatalf("after op %d: expected %q, got %q", i/3, ref, d.Materialize())
		}
		checkInvariants(t, d)
	}
	if d.LineCount() != bytes.Count(ref, []byte{'\n'})+1 {
		t.Errorf("line count %d does not match reference", d.LineCount())
	}
	for line, content := range bytes.Split(ref, []byte{'\n'}) {
		if got := d.Line(line + 1); !bytes.Equal(got, content) {
			t.Errorf("line %d: expected %q, got %q", line+1, content, got)
		}
	}
}

func TestModelEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		initial := make([]byte, rng.Intn(40))
		rng.Read(initial)
		ops := make([]byte, 3*200)
		rng.Read(ops)

		d := document.New(initial)
		applyAndCompare(t, d, flat(slices.Clone(initial)), ops)
	}
}

func FuzzEdits(f *testing.F) {
	f.Add([]byte("ab\ncd"), []byte{0, 1, 'x', 2, 0, 3, 1, 5, '\n'})
	f.Add([]byte(""), []byte{0, 0, 'a', 0, 1, 'b', 2, 0, 2})
	f.Add([]byte("hello\nworld\n"), []byte{2, 3, 4, 1, 0, 'Z', 2, 0, 1})
	f.Fuzz(func(t *testing.T, initial, ops []byte) {
		d := document.New(initial)
		applyAndCompare(t, d, flat(slices.Clone(initial)), ops)
	})
}
