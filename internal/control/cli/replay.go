package cli

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ja-he/piecemeal/internal/input"
)

// ReplayCommand is the `replay` command, for `go-flags` to parse command line
// args into.
type ReplayCommand struct {
	Keys string `short:"k" long:"keys" required:"true" description:"the key sequence to apply, e.g. 'ihello<esc>:wq<cr>'" value-name:"<keyspec>"`
}

// Execute feeds the key sequence to a session editing the file given as the
// only positional arg (or the configured default file).
// Nothing is written unless the sequence contains a write command.
func (command *ReplayCommand) Execute(args []string) error {
	keys, err := input.KeyspecToBytes(command.Keys)
	if err != nil {
		return err
	}

	env, err := prepareEnvironment(&Opts, args)
	if err != nil {
		return err
	}

	s, err := env.newSession()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return env.runHeadless(ctx, s, bytes.NewReader(keys))
}
