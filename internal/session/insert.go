package session

func (s *Session) processInsert(b byte) {
	switch b {
	case keyEscape:
		s.setMode(ModeNormal)
	case keyCR, keyLF:
		s.doc.Insert(s.cursorOffset(), '\n')
		s.cursor.Line++
		s.cursor.Column = 1
	case keyBackspace, keyDelete:
		s.backspace()
	case keyTab, keyVTab:
		for i := 0; i < s.tabWidth; i++ {
			s.insertAtCursor(' ')
		}
	default:
		s.insertAtCursor(b)
	}
}

func (s *Session) insertAtCursor(b byte) {
	s.doc.Insert(s.cursorOffset(), b)
	s.cursor.Column++
}

// backspace removes the byte before the cursor. At the start of a line that
// byte is the previous line's break, so the lines are joined.
func (s *Session) backspace() {
	if s.cursor.Column > 1 {
		s.doc.Delete(s.cursorOffset()-1, 1)
		s.cursor.Column--
		return
	}
	if s.cursor.Line > 1 {
		prevLength := s.doc.LineLength(s.cursor.Line - 1)
		s.doc.Delete(s.cursorOffset()-1, 1)
		s.cursor.Line--
		s.cursor.Column = prevLength + 1
	}
}
