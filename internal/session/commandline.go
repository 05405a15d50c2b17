package session

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

func (s *Session) processCommandLine(b byte) error {
	switch b {
	case keyCR, keyLF:
		command := string(s.command)
		s.leaveCommandLine()
		return s.execute(command)
	case keyEscape:
		s.leaveCommandLine()
	case keyBackspace, keyDelete:
		if len(s.command) == 0 {
			s.leaveCommandLine()
			return nil
		}
		s.command = s.command[:len(s.command)-1]
	default:
		if isPrintable(b) {
			s.command = append(s.command, b)
		}
	}
	return nil
}

func (s *Session) leaveCommandLine() {
	s.command = s.command[:0]
	s.setMode(ModeNormal)
}

// execute runs a command line command. Unknown commands are ignored.
func (s *Session) execute(command string) error {
	switch command {
	case "q":
		return ErrQuit
	case "w":
		return s.write()
	case "wq":
		if err := s.write(); err != nil {
			return err
		}
		return ErrQuit
	default:
		log.Debug().Str("command", command).Msg("ignoring unrecognized command")
		return nil
	}
}

func (s *Session) write() error {
	if s.persister == nil {
		return ErrNoPersister
	}
	content := s.doc.Materialize()
	if err := s.persister.Save(content); err != nil {
		return fmt.Errorf("could not write document: %w", err)
	}
	log.Info().Int("bytes", len(content)).Msg("written")
	return nil
}

// isPrintable reports whether b may be part of a command. Bytes of multi-byte
// UTF-8 sequences are accepted as they are.
func isPrintable(b byte) bool {
	return b >= 0x20 && b != keyDelete
}
