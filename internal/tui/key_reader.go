package tui

import (
	"context"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/piecemeal/internal/input"
)

// KeyReader provides the key events of a screen as a byte stream, as consumed
// by an edit session.
//
// Resize events are passed to the synchronizer and the onResize callback, as
// no byte results from them. Once the context is done, pending and further
// reads fail with the context's error.
type KeyReader struct {
	ctx      context.Context
	events   EventPollable
	sync     ScreenSynchronizer
	onResize func()
	pending  []byte
}

// NewKeyReader returns a KeyReader polling the given events.
// To unblock a pending read on cancellation, post an interrupt event to the
// screen (see InterruptOnDone).
func NewKeyReader(ctx context.Context, events EventPollable, sync ScreenSynchronizer, onResize func()) *KeyReader {
	return &KeyReader{
		ctx:      ctx,
		events:   events,
		sync:     sync,
		onResize: onResize,
	}
}

// ReadByte returns the next input byte, blocking until a key is pressed.
// It returns io.EOF once the screen has been finalized.
func (r *KeyReader) ReadByte() (byte, error) {
	for len(r.pending) == 0 {
		if err := r.ctx.Err(); err != nil {
			return 0, err
		}

		switch e := r.events.PollEvent().(type) {
		case nil:
			return 0, io.EOF
		case *tcell.EventKey:
			key := input.FromTcell(e)
			r.pending = key.Bytes()
			if r.pending == nil {
				log.Debug().Str("key", key.ToDebugString()).Msg("ignoring key without byte representation")
			}
		case *tcell.EventResize:
			if r.sync != nil {
				r.sync.NeedsSync()
			}
			if r.onResize != nil {
				r.onResize()
			}
		}
	}

	b := r.pending[0]
	r.pending = r.pending[1:]
	return b, nil
}

// EventPoster allows posting events to a screen's event queue.
type EventPoster interface {
	PostEvent(ev tcell.Event) error
}

// InterruptOnDone posts an interrupt event to the screen once the context is
// done, waking up a KeyReader blocked in PollEvent.
// The returned stop func ends the wait without posting; call it before
// finalizing the screen.
func InterruptOnDone(ctx context.Context, screen EventPoster) (stop func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-done:
		case <-ctx.Done():
			select {
			case <-done:
				return
			default:
			}
			if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				log.Warn().Err(err).Msg("could not post interrupt event")
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
