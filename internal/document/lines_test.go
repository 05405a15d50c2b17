package document_test

import (
	"testing"

	"github.com/ja-he/piecemeal/internal/document"
)

func TestLineCount(t *testing.T) {
	for _, tc := range []struct {
		content  string
		expected int
	}{
		{"", 1},
		{"ab", 1},
		{"ab\n", 2},
		{"ab\ncd", 2},
		{"ab\ncd\n", 3},
		{"\n\n", 3},
	} {
		d := document.New([]byte(tc.content))
		if got := d.LineCount(); got != tc.expected {
			t.Errorf("line count of %q: expected %d, got %d", tc.content, tc.expected, got)
		}
	}

	t.Run("after edits", func(t *testing.T) {
		d := document.New([]byte("ab\ncd"))
		d.Insert(1, '\n')
		if d.LineCount() != 3 {
			t.Error("expected 3 lines after inserting a break, got", d.LineCount())
		}
		d.Delete(1, 1)
		d.Delete(2, 1)
		if d.LineCount() != 1 {
			t.Error("expected 1 line after deleting both breaks, got", d.LineCount())
		}
	})
}

func TestLineLength(t *testing.T) {
	d := document.New([]byte("ab\n\ncde"))
	d.Insert(7, 'f')
	for line, expected := range map[int]int{0: 0, 1: 2, 2: 0, 3: 4, 4: 0} {
		if got := d.LineLength(line); got != expected {
			t.Errorf("line %d: expected length %d, got %d", line, expected, got)
		}
	}
	if got := string(d.Line(3)); got != "cdef" {
		t.Errorf("expected line 3 to be %q, got %q", "cdef", got)
	}
	if got := d.Line(9); len(got) != 0 {
		t.Errorf("expected out-of-range line to be empty, got %q", got)
	}
}

func TestOffsetOf(t *testing.T) {
	d := document.New([]byte("ab\ncd"))
	for _, tc := range []struct {
		line, column, expected int
	}{
		{1, 1, 0},
		{1, 2, 1},
		{1, 3, 2},
		{2, 1, 3},
		{2, 2, 4},
		{2, 3, 5},
	} {
		if got := d.OffsetOf(tc.line, tc.column); got != tc.expected {
			t.Errorf("offset of (%d,%d): expected %d, got %d", tc.line, tc.column, tc.expected, got)
		}
	}

	t.Run("across split pieces", func(t *testing.T) {
		d := document.New([]byte("ab\ncd"))
		d.Insert(2, '\n') // "ab\n\ncd"
		d.Insert(0, 'x')  // "xab\n\ncd"
		if got := d.OffsetOf(3, 2); got != 6 {
			t.Error("expected offset 6 for (3,2), got", got)
		}
		if got := d.OffsetOf(2, 1); got != 4 {
			t.Error("expected offset 4 for empty line 2, got", got)
		}
	})
}

func TestOffsetInsertConsistency(t *testing.T) {
	d := document.New([]byte("one\ntwo\n\nfour"))
	d.Insert(4, 'X')
	for line := 1; line <= d.LineCount(); line++ {
		columns := d.LineLength(line) + 1
		for column := 1; column <= columns; column++ {
			before := d.LineLength(line)
			d.Insert(d.OffsetOf(line, column), '#')
			if after := d.LineLength(line); after != before+1 {
				t.Errorf("insert at (%d,%d): line length %d -> %d", line, column, before, after)
			}
			checkInvariants(t, d)
		}
	}
}
