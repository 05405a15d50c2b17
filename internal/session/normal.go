package session

// motion computes the cursor target for a movement repeated count times.
// Targets are not clamped; the caller clamps or syncs.
type motion struct {
	target func(s *Session, count int) Cursor

	// linewise motions make operators act on whole lines.
	linewise bool
	// inclusive motions make operators include the target column.
	inclusive bool
}

var motions = map[byte]motion{
	'h': {target: (*Session).left},
	'l': {target: (*Session).right},
	'j': {target: (*Session).down, linewise: true},
	'k': {target: (*Session).up, linewise: true},
	'w': {target: (*Session).nextWordStart},
	'b': {target: (*Session).prevWordStart},
	'$': {target: (*Session).endOfLine, inclusive: true},
}

func (s *Session) processNormal(b byte) {
	if isDigit(b) {
		s.count = append(s.count, b)
		return
	}

	count := s.takeCount()

	if m, ok := motions[b]; ok {
		s.cursor = m.target(s, count)
		return
	}

	switch b {
	case ':':
		s.command = s.command[:0]
		s.setMode(ModeCommandLine)
	case 'i':
		s.setMode(ModeInsert)
	case 'a':
		s.setMode(ModeInsert)
		if s.doc.LineLength(s.cursor.Line) > 0 {
			s.cursor.Column++
		}
	case 'x':
		s.deleteAtCursor(count)
	case 'd', 'y', 'c':
		s.operator = operatorFor(b)
		s.operatorCount = count
		s.setMode(ModeComposing)
	}
}

// deleteAtCursor deletes up to count bytes starting at the cursor, but never
// past the end of the current line.
func (s *Session) deleteAtCursor(count int) {
	rest := s.doc.LineLength(s.cursor.Line) - s.cursor.Column + 1
	n := min(count, rest)
	if n <= 0 {
		return
	}
	offset := s.cursorOffset()
	s.register = s.doc.Slice(offset, n)
	s.doc.Delete(offset, n)
}

func (s *Session) left(count int) Cursor {
	return Cursor{Line: s.cursor.Line, Column: s.cursor.Column - count}
}

func (s *Session) right(count int) Cursor {
	return Cursor{Line: s.cursor.Line, Column: s.cursor.Column + count}
}

func (s *Session) up(count int) Cursor {
	return Cursor{Line: s.cursor.Line - count, Column: s.cursor.Column}
}

func (s *Session) down(count int) Cursor {
	return Cursor{Line: s.cursor.Line + count, Column: s.cursor.Column}
}

func (s *Session) endOfLine(int) Cursor {
	return Cursor{Line: s.cursor.Line, Column: s.doc.LineLength(s.cursor.Line)}
}

// nextWordStart moves to the beginning of the count-th next word, or one past
// the end of the line if there is none.
func (s *Session) nextWordStart(count int) Cursor {
	line := s.doc.Line(s.cursor.Line)
	i := min(s.cursor.Column-1, len(line))
	for n := 0; n < count && i < len(line); n++ {
		for i < len(line) && !isBlank(line[i]) {
			i++
		}
		for i < len(line) && isBlank(line[i]) {
			i++
		}
	}
	return Cursor{Line: s.cursor.Line, Column: i + 1}
}

// prevWordStart moves to the beginning of the count-th previous word, or to
// the beginning of the line if there is none.
func (s *Session) prevWordStart(count int) Cursor {
	line := s.doc.Line(s.cursor.Line)
	i := min(s.cursor.Column-1, len(line))
	for n := 0; n < count && i > 0; n++ {
		for i > 0 && isBlank(line[i-1]) {
			i--
		}
		for i > 0 && !isBlank(line[i-1]) {
			i--
		}
	}
	return Cursor{Line: s.cursor.Line, Column: i + 1}
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }
