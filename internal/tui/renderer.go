package tui

import (
	"strconv"
	"time"

	"github.com/ja-he/piecemeal/internal/document"
	"github.com/ja-he/piecemeal/internal/potatolog"
	"github.com/ja-he/piecemeal/internal/session"
	"github.com/ja-he/piecemeal/internal/styling"
)

// Screen is what the Renderer draws to.
type Screen interface {
	Dimensions() (x, y, w, h int)
	Clear()
	Show()
	ShowCursor(x, y int)
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
	DrawBox(x, y, w, h int, style styling.DrawStyling)
}

// SessionView is the read-only view of an edit session the Renderer needs.
type SessionView interface {
	Document() *document.Document
	Cursor() session.Cursor
	Mode() session.Mode
	ModeLabel() string
	CommandText() string
	Count() string
	Operator() session.Operator
}

// pendingHighlight is how much (in percent) the status background is lightened
// behind a pending count or operator.
const pendingHighlight = 20

// MetricsRecorder receives render times in microseconds.
type MetricsRecorder interface {
	Add(value uint64)
}

// Renderer paints a session: the document lines with a line number gutter and
// a status line at the bottom.
type Renderer struct {
	screen     Screen
	stylesheet *styling.Stylesheet
	log        potatolog.LogReader
	metrics    MetricsRecorder

	relativeLineNumbers bool

	// first document line shown
	top int
}

// NewRenderer returns a Renderer. logReader and metrics may be nil.
func NewRenderer(
	screen Screen,
	stylesheet *styling.Stylesheet,
	logReader potatolog.LogReader,
	metrics MetricsRecorder,
	relativeLineNumbers bool,
) *Renderer {
	return &Renderer{
		screen:              screen,
		stylesheet:          stylesheet,
		log:                 logReader,
		metrics:             metrics,
		relativeLineNumbers: relativeLineNumbers,
		top:                 1,
	}
}

// Render draws the given session and shows the result.
func (r *Renderer) Render(v SessionView) {
	start := time.Now()

	_, _, w, h := r.screen.Dimensions()
	r.screen.Clear()
	r.screen.DrawBox(0, 0, w, h, r.stylesheet.Normal)

	textHeight := h - 1
	cursorX, cursorY := r.drawText(v, w, textHeight)
	commandX := r.drawStatus(v, w, h-1)

	if v.Mode() == session.ModeCommandLine {
		r.screen.ShowCursor(commandX, h-1)
	} else {
		r.screen.ShowCursor(cursorX, cursorY)
	}
	r.screen.Show()

	if r.metrics != nil {
		r.metrics.Add(uint64(time.Since(start).Microseconds()))
	}
}

// drawText draws the visible document lines and returns the screen position
// of the cursor.
func (r *Renderer) drawText(v SessionView, w, h int) (cursorX, cursorY int) {
	if h <= 0 {
		return 0, 0
	}

	doc := v.Document()
	cursor := v.Cursor()
	lineCount := doc.LineCount()
	// the empty line after a final line break is only shown while the cursor is
	// on it
	if lineCount > 1 && doc.LineLength(lineCount) == 0 && cursor.Line < lineCount {
		lineCount--
	}

	r.scrollTo(cursor.Line, h)

	gutterWidth := len(strconv.Itoa(lineCount)) + 1
	for row := 0; row < h; row++ {
		line := r.top + row
		if line > lineCount {
			break
		}

		numberStyle := r.stylesheet.LineNumber
		number := line
		if line == cursor.Line {
			numberStyle = r.stylesheet.LineNumberCurrent
		} else if r.relativeLineNumbers {
			number = abs(line - cursor.Line)
		}
		numberText := strconv.Itoa(number)
		r.screen.DrawText(gutterWidth-1-len(numberText), row, len(numberText), 1, numberStyle, numberText)

		r.screen.DrawText(gutterWidth, row, w-gutterWidth, 1, r.stylesheet.Normal, string(doc.Line(line)))
	}

	prefix := doc.Line(cursor.Line)[:cursor.Column-1]
	return gutterWidth + TextWidth(string(prefix)), cursor.Line - r.top
}

// drawStatus draws the status line in the given row and returns the screen
// column for a cursor at the end of the command line.
func (r *Renderer) drawStatus(v SessionView, w, row int) (commandX int) {
	r.screen.DrawBox(0, row, w, 1, r.stylesheet.Status)

	label := " " + v.ModeLabel() + " "
	r.screen.DrawText(0, row, w, 1, r.stylesheet.StatusMode.Bolded(), label)
	x := TextWidth(label)

	pending := ""
	if op := v.Operator(); op != session.OperatorNone {
		pending = string(op.Key())
	}
	pending += v.Count()
	if pending != "" {
		r.screen.DrawText(x+1, row, w-x-1, 1, r.stylesheet.Status.LightenedBG(pendingHighlight), pending)
		x += 1 + TextWidth(pending)
	}

	position := strconv.Itoa(v.Cursor().Line) + "," + strconv.Itoa(v.Cursor().Column) + " "
	positionX := w - TextWidth(position)

	if r.log != nil {
		if _, message, ok := r.log.Last(); ok {
			r.screen.DrawText(x+1, row, positionX-x-2, 1, r.stylesheet.Message, message)
		}
	}

	if v.Mode() == session.ModeCommandLine {
		command := ":" + v.CommandText()
		commandWidth := TextWidth(command)
		commandX = max((w-commandWidth)/2, 0)
		r.screen.DrawBox(commandX, row, commandWidth+1, 1, r.stylesheet.CommandLine)
		r.screen.DrawText(commandX, row, w-commandX, 1, r.stylesheet.CommandLine, command)
		commandX += commandWidth
	}

	r.screen.DrawText(positionX, row, w-positionX, 1, r.stylesheet.Status, position)
	return commandX
}

// scrollTo adjusts the first shown line so the given line is visible.
func (r *Renderer) scrollTo(line, height int) {
	if line < r.top {
		r.top = line
	}
	if line >= r.top+height {
		r.top = line - height + 1
	}
	if r.top < 1 {
		r.top = 1
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
