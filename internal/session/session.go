// Package session implements the modal editing state machine that turns a
// stream of input bytes into document edits and cursor movements.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/piecemeal/internal/document"
)

// ErrQuit is returned by ProcessByte when a quit command was executed.
var ErrQuit = errors.New("quit requested")

// ErrNoPersister is returned when a write is requested from a session that has
// nowhere to write to.
var ErrNoPersister = errors.New("no persister configured")

const (
	keyBackspace = 0x08
	keyTab       = '\t'
	keyLF        = '\n'
	keyVTab      = 0x0b
	keyCR        = '\r'
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

const maxCount = 1 << 20

// Persister writes the full document content to the backing storage.
type Persister interface {
	Save(content []byte) error
}

// MetricsRecorder receives the time taken to process each input byte, in
// microseconds.
type MetricsRecorder interface {
	Add(value uint64)
}

// Cursor is a 1-based (line, column) position; the column is in bytes.
type Cursor struct {
	Line   int
	Column int
}

// Session is the editing state for a single document.
type Session struct {
	doc    *document.Document
	cursor Cursor
	mode   Mode

	command []byte
	count   []byte

	operator      Operator
	operatorCount int
	register      []byte

	persister Persister
	metrics   MetricsRecorder
	tabWidth  int
}

// Option configures a Session.
type Option func(*Session)

// WithPersister sets where ':w' writes to.
func WithPersister(p Persister) Option {
	return func(s *Session) { s.persister = p }
}

// WithTabWidth sets the number of spaces a tab inserts.
func WithTabWidth(width int) Option {
	return func(s *Session) {
		if width > 0 {
			s.tabWidth = width
		}
	}
}

// WithMetrics sets a recorder for per-byte processing times.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Session) { s.metrics = m }
}

// New returns a session in normal mode with the cursor at the document start.
func New(doc *document.Document, opts ...Option) *Session {
	s := &Session{
		doc:      doc,
		cursor:   Cursor{Line: 1, Column: 1},
		mode:     ModeNormal,
		command:  make([]byte, 0, 64),
		count:    make([]byte, 0, 8),
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sync()
	return s
}

// Document returns the edited document.
func (s *Session) Document() *document.Document { return s.doc }

// Cursor returns the current cursor position.
func (s *Session) Cursor() Cursor { return s.cursor }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// ModeLabel returns the current mode's label for display.
func (s *Session) ModeLabel() string { return s.mode.Label() }

// CommandText returns the pending command line text (without the ':').
func (s *Session) CommandText() string { return string(s.command) }

// Count returns the pending numeric prefix.
func (s *Session) Count() string { return string(s.count) }

// Operator returns the operator pending in composing mode.
func (s *Session) Operator() Operator { return s.operator }

// Register returns a copy of the bytes last removed or copied.
func (s *Session) Register() []byte { return append([]byte(nil), s.register...) }

// ProcessByte processes a single input byte to completion and re-synchronizes
// the cursor with the document.
//
// It returns ErrQuit after a quit command and a wrapped error if a requested
// write failed.
func (s *Session) ProcessByte(b byte) error {
	start := time.Now()

	var err error
	switch s.mode {
	case ModeNormal:
		s.processNormal(b)
	case ModeCommandLine:
		err = s.processCommandLine(b)
	case ModeComposing:
		s.processComposing(b)
	case ModeInsert:
		s.processInsert(b)
	default:
		log.Error().Int("mode", int(s.mode)).Msg("invalid mode found, likely logic error; resetting to normal")
		s.setMode(ModeNormal)
	}
	s.sync()

	if s.metrics != nil {
		s.metrics.Add(uint64(time.Since(start).Microseconds()))
	}
	return err
}

// Run reads and processes bytes until the input is exhausted, a quit command
// is executed, or processing fails. onUpdate, if given, is called after every
// processed byte, e.g. to re-render.
//
// Exhausted input and quitting both return nil. The context is checked
// between bytes.
func (s *Session) Run(ctx context.Context, r io.ByteReader, onUpdate func()) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			log.Info().Msg("input exhausted, ending session")
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not read input: %w", err)
		}

		err = s.ProcessByte(b)
		if errors.Is(err, ErrQuit) {
			log.Info().Msg("quitting")
			return nil
		}
		if err != nil {
			return err
		}

		if onUpdate != nil {
			onUpdate()
		}
	}
}

func (s *Session) setMode(m Mode) {
	if s.mode != m {
		log.Debug().Str("from", s.mode.String()).Str("to", m.String()).Msg("switching mode")
	}
	s.mode = m
}

// takeCount resolves and clears the numeric prefix. An absent or zero prefix
// counts as 1.
func (s *Session) takeCount() int {
	if len(s.count) == 0 {
		return 1
	}
	n, err := strconv.Atoi(string(s.count))
	s.count = s.count[:0]
	if err != nil || n > maxCount {
		return maxCount
	}
	if n < 1 {
		return 1
	}
	return n
}

// lastLine is the last line the cursor may be on. A document ending in a line
// break has an empty conceptual line after it, which is only reachable in
// insert mode.
func (s *Session) lastLine() int {
	n := s.doc.LineCount()
	if s.mode != ModeInsert && n > 1 && s.doc.LineLength(n) == 0 {
		return n - 1
	}
	return n
}

// maxColumn is the last column the cursor may be on in the given line. In
// insert mode this is one past the last byte, so text can be appended.
func (s *Session) maxColumn(line int) int {
	n := s.doc.LineLength(line)
	if s.mode == ModeInsert {
		return n + 1
	}
	return n
}

// sync clamps the cursor into the document. It must run after every mutation
// and before any position-dependent lookup.
func (s *Session) sync() {
	s.cursor.Line = clampInt(s.cursor.Line, 1, s.lastLine())
	s.cursor.Column = clampInt(s.cursor.Column, 1, s.maxColumn(s.cursor.Line))
}

func (s *Session) cursorOffset() int {
	return s.doc.OffsetOf(s.cursor.Line, s.cursor.Column)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
