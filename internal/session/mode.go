package session

// Mode enumerates the modes of the modal editing state machine.
type Mode int

const (
	// ModeNormal is the "normal mode" of the editor, i.E. input bytes are not
	// inserted but used for navigation and manipulation of the text.
	ModeNormal Mode = iota
	// ModeCommandLine accumulates a ':' command until it is executed or
	// discarded.
	ModeCommandLine
	// ModeComposing holds a pending operator that waits for a motion.
	ModeComposing
	// ModeInsert is the "insert mode" of the editor, i.E. input bytes are
	// inserted into the document directly.
	ModeInsert
)

// String returns the name of the mode, e.g. for logging.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCommandLine:
		return "command-line"
	case ModeComposing:
		return "composing"
	case ModeInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Label returns the label a renderer shows for the mode.
// All sub-states of normal mode are shown as normal mode.
func (m Mode) Label() string {
	if m == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// Operator is an operation pending in composing mode.
type Operator int

const (
	// OperatorNone means no operator is pending.
	OperatorNone Operator = iota
	// OperatorDelete removes the range and keeps it in the register.
	OperatorDelete
	// OperatorYank copies the range to the register.
	OperatorYank
	// OperatorChange removes the range and enters insert mode.
	OperatorChange
)

// String returns the name of the operator.
func (o Operator) String() string {
	switch o {
	case OperatorNone:
		return "none"
	case OperatorDelete:
		return "delete"
	case OperatorYank:
		return "yank"
	case OperatorChange:
		return "change"
	default:
		return "unknown"
	}
}

// Key returns the normal mode byte that starts the operator.
func (o Operator) Key() byte {
	switch o {
	case OperatorDelete:
		return 'd'
	case OperatorYank:
		return 'y'
	case OperatorChange:
		return 'c'
	default:
		return 0
	}
}

func operatorFor(b byte) Operator {
	switch b {
	case 'd':
		return OperatorDelete
	case 'y':
		return OperatorYank
	case 'c':
		return OperatorChange
	default:
		return OperatorNone
	}
}
