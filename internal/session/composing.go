package session

import (
	"github.com/rs/zerolog/log"
)

// processComposing completes the pending operator with the motion given by b.
// Escape, or any byte that is neither a count digit nor a motion, discards the
// operator without touching document or cursor.
func (s *Session) processComposing(b byte) {
	if isDigit(b) {
		s.count = append(s.count, b)
		return
	}

	count := min(s.operatorCount*s.takeCount(), maxCount)
	op := s.operator
	s.operator = OperatorNone
	s.operatorCount = 0
	s.setMode(ModeNormal)

	if b == op.Key() {
		s.applyLinewise(op, s.cursor.Line, s.cursor.Line+count-1)
		return
	}

	m, ok := motions[b]
	if !ok {
		log.Debug().Str("operator", op.String()).Uint8("input", b).Msg("discarding pending operator")
		return
	}

	target := m.target(s, count)
	if m.linewise {
		s.applyLinewise(op, s.cursor.Line, target.Line)
		return
	}
	s.applyCharwise(op, s.cursor.Column, target.Column, m.inclusive)
}

// applyCharwise applies op to the columns between from and to on the cursor's
// line. The column at the larger end is only included for inclusive motions.
func (s *Session) applyCharwise(op Operator, from, to int, inclusive bool) {
	line := s.cursor.Line
	start, end := min(from, to), max(from, to)
	if inclusive {
		end++
	}
	limit := s.doc.LineLength(line) + 1
	start = clampInt(start, 1, limit)
	end = clampInt(end, 1, limit)

	if end > start {
		offset := s.doc.OffsetOf(line, start)
		s.register = s.doc.Slice(offset, end-start)
		if op != OperatorYank {
			s.doc.Delete(offset, end-start)
		}
	}

	s.cursor.Column = start
	if op == OperatorChange {
		s.setMode(ModeInsert)
	}
}

// applyLinewise applies op to the lines between a and b, including both.
// Delete and yank take the lines with their line breaks; change keeps one
// (empty) line to insert into.
func (s *Session) applyLinewise(op Operator, a, b int) {
	lastLine := s.lastLine()
	first := clampInt(min(a, b), 1, lastLine)
	last := clampInt(max(a, b), 1, lastLine)

	start := s.doc.OffsetOf(first, 1)
	contentEnd := s.doc.OffsetOf(last, s.doc.LineLength(last)+1)
	end := contentEnd

	switch {
	case op == OperatorChange:
	case contentEnd < s.doc.Length():
		// take the trailing line break
		end++
	case first > 1:
		// the last line has no break of its own, take the preceding one
		start--
	}

	s.register = s.doc.Slice(start, end-start)
	if op != OperatorYank {
		s.doc.Delete(start, end-start)
	}

	s.cursor = Cursor{Line: first, Column: 1}
	if op == OperatorChange {
		s.setMode(ModeInsert)
	}
}
