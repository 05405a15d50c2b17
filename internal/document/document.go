// Package document provides the piece table that holds the text being edited.
//
// All addressing is in bytes. Lines and columns are 1-based, offsets 0-based.
package document

import (
	"bytes"
	"slices"
)

// Source identifies the backing byte store a piece refers to.
type Source int

const (
	// Original is the immutable content the document was created from.
	Original Source = iota
	// Added is the append-only store that receives all inserted bytes.
	Added
)

// String returns a short name for the source, e.g. for logging.
func (s Source) String() string {
	switch s {
	case Original:
		return "original"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// Piece describes a contiguous run of bytes taken verbatim from one of the two
// backing stores.
type Piece struct {
	Source Source
	Start  int
	Length int
}

// Document is a piece table.
//
// The concatenation of the bytes referenced by its pieces, in order, is the
// current content. The stores themselves are never edited; inserted bytes are
// appended to the added store and edits only splice piece descriptors.
type Document struct {
	original []byte
	added    []byte
	pieces   []Piece
}

// New returns a document holding a copy of the given content.
func New(original []byte) *Document {
	d := &Document{
		original: bytes.Clone(original),
		added:    make([]byte, 0, 256),
		pieces:   make([]Piece, 0, 16),
	}
	if len(original) > 0 {
		d.pieces = append(d.pieces, Piece{Source: Original, Start: 0, Length: len(original)})
	}
	return d
}

// Length returns the document length in bytes.
func (d *Document) Length() int {
	n := 0
	for _, p := range d.pieces {
		n += p.Length
	}
	return n
}

// Pieces returns a copy of the current piece descriptors.
func (d *Document) Pieces() []Piece {
	return slices.Clone(d.pieces)
}

// Materialize returns the full current content.
func (d *Document) Materialize() []byte {
	result := make([]byte, 0, d.Length())
	for _, p := range d.pieces {
		result = append(result, d.bytesOf(p)...)
	}
	return result
}

// Slice returns a copy of count bytes starting at offset.
// The range is clamped to the document.
func (d *Document) Slice(offset, count int) []byte {
	offset, count = d.clampRange("slice", offset, count)
	result := make([]byte, 0, count)
	end := offset + count
	pos := 0
	for _, p := range d.pieces {
		if pos >= end {
			break
		}
		pEnd := pos + p.Length
		if pEnd > offset {
			b := d.bytesOf(p)
			from := max(offset, pos) - pos
			to := min(end, pEnd) - pos
			result = append(result, b[from:to]...)
		}
		pos = pEnd
	}
	return result
}

// Insert inserts a single byte at offset.
//
// The byte is appended to the added store. If offset falls inside a piece, that
// piece is split around a new one-byte piece; on a piece boundary (including
// the very start and end) the new piece is spliced in directly. A byte that
// continues the most recent insertion extends the previous piece instead.
func (d *Document) Insert(offset int, b byte) {
	offset = d.clampOffset("insert", offset)

	d.added = append(d.added, b)
	inserted := Piece{Source: Added, Start: len(d.added) - 1, Length: 1}

	idx, within := d.locate(offset)
	if within == 0 {
		if idx > 0 {
			prev := d.pieces[idx-1]
			if prev.Source == Added && prev.Start+prev.Length == inserted.Start {
				d.pieces[idx-1] = Piece{Source: Added, Start: prev.Start, Length: prev.Length + 1}
				return
			}
		}
		d.pieces = slices.Insert(d.pieces, idx, inserted)
		return
	}

	p := d.pieces[idx]
	left := Piece{Source: p.Source, Start: p.Start, Length: within}
	right := Piece{Source: p.Source, Start: p.Start + within, Length: p.Length - within}
	d.pieces = slices.Replace(d.pieces, idx, idx+1, left, inserted, right)
}

// Delete removes count bytes starting at offset.
//
// Pieces fully inside the range are dropped and the pieces at either end are
// truncated (or split, when the range lies inside a single piece). A zero
// count is a no-op.
func (d *Document) Delete(offset, count int) {
	if count == 0 {
		return
	}
	offset, count = d.clampRange("delete", offset, count)
	if count == 0 {
		return
	}

	first, firstWithin := d.locate(offset)
	last, lastWithin := d.locate(offset + count)

	replacement := make([]Piece, 0, 2)
	if firstWithin > 0 {
		p := d.pieces[first]
		replacement = append(replacement, Piece{Source: p.Source, Start: p.Start, Length: firstWithin})
	}
	if last < len(d.pieces) && lastWithin > 0 {
		p := d.pieces[last]
		replacement = append(replacement, Piece{Source: p.Source, Start: p.Start + lastWithin, Length: p.Length - lastWithin})
		last++
	}
	d.pieces = slices.Replace(d.pieces, first, last, replacement...)
}

// locate returns the index of the piece containing offset and the position of
// offset within it. An offset on a boundary yields the following piece with
// position 0; the document end yields (len(pieces), 0).
func (d *Document) locate(offset int) (index, within int) {
	pos := 0
	for i, p := range d.pieces {
		if offset < pos+p.Length {
			return i, offset - pos
		}
		pos += p.Length
	}
	return len(d.pieces), 0
}

func (d *Document) bytesOf(p Piece) []byte {
	switch p.Source {
	case Original:
		return d.original[p.Start : p.Start+p.Length]
	default:
		return d.added[p.Start : p.Start+p.Length]
	}
}
