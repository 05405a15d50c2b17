package document

import (
	"bytes"
)

// LineCount returns the number of lines: the number of line breaks plus one
// for the (possibly empty) run after the last one.
func (d *Document) LineCount() int {
	n := 1
	for _, p := range d.pieces {
		n += bytes.Count(d.bytesOf(p), []byte{'\n'})
	}
	return n
}

// LineLength returns the number of bytes in the given line, excluding its line
// break. Lines out of range have length 0.
func (d *Document) LineLength(line int) int {
	if line < 1 || line > d.LineCount() {
		return 0
	}
	start, end := d.lineBounds(line)
	return end - start
}

// Line returns a copy of the given line's bytes, excluding its line break.
// Lines out of range are empty.
func (d *Document) Line(line int) []byte {
	if line < 1 || line > d.LineCount() {
		return []byte{}
	}
	start, end := d.lineBounds(line)
	return d.Slice(start, end-start)
}

// OffsetOf converts a (line, column) position to an absolute offset.
//
// The column may address one past the last byte of the line, i.e. the
// position of the line break (or the document end). Positions out of range are
// clamped.
func (d *Document) OffsetOf(line, column int) int {
	lineCount := d.LineCount()
	if line < 1 || line > lineCount {
		d.outOfRange("offset-of line", line, lineCount)
		line = clampInt(line, 1, lineCount)
	}
	start, end := d.lineBounds(line)
	maxColumn := end - start + 1
	if column < 1 || column > maxColumn {
		d.outOfRange("offset-of column", column, maxColumn)
		column = clampInt(column, 1, maxColumn)
	}
	return start + column - 1
}

// lineBounds returns the offset of the first byte of the line and the offset of
// its line break (or the document end). line must be within range.
func (d *Document) lineBounds(line int) (start, end int) {
	start = d.lineStart(line)
	end = d.indexFrom(start, '\n')
	if end < 0 {
		end = d.Length()
	}
	return start, end
}

func (d *Document) lineStart(line int) int {
	if line <= 1 {
		return 0
	}
	need := line - 1
	pos := 0
	for _, p := range d.pieces {
		b := d.bytesOf(p)
		n := bytes.Count(b, []byte{'\n'})
		if n < need {
			need -= n
			pos += len(b)
			continue
		}
		for i, c := range b {
			if c == '\n' {
				need--
				if need == 0 {
					return pos + i + 1
				}
			}
		}
	}
	return pos
}

// indexFrom returns the offset of the first occurrence of c at or after offset,
// or -1.
func (d *Document) indexFrom(offset int, c byte) int {
	pos := 0
	for _, p := range d.pieces {
		b := d.bytesOf(p)
		if pos+len(b) <= offset {
			pos += len(b)
			continue
		}
		skip := 0
		if offset > pos {
			skip = offset - pos
		}
		if i := bytes.IndexByte(b[skip:], c); i >= 0 {
			return pos + skip + i
		}
		pos += len(b)
	}
	return -1
}
