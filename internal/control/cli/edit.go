package cli

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/ja-he/piecemeal/internal/potatolog"
	"github.com/ja-he/piecemeal/internal/session"
	"github.com/ja-he/piecemeal/internal/styling"
	"github.com/ja-he/piecemeal/internal/tui"
)

// EditCommand is the `edit` command, for `go-flags` to parse command line args
// into. It is also run when no command is given.
type EditCommand struct {
}

// Execute edits the file given as the only positional arg (or the configured
// default file) in the terminal. If stdin is not a terminal, the session is
// fed from stdin instead and nothing is rendered.
func (command *EditCommand) Execute(args []string) error {
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

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Info().Msg("stdin is not a terminal, running headless")
		return env.runHeadless(ctx, s, bufio.NewReader(os.Stdin))
	}
	return env.runTUI(ctx, s)
}

func (env *environment) runTUI(ctx context.Context, s *session.Session) error {
	stylesheet, err := styling.NewStylesheetFromConfig(env.config.Stylesheet)
	if err != nil {
		return err
	}

	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = env.tuiLogger

	renderer := tui.NewRenderer(
		screen,
		stylesheet,
		&potatolog.GlobalMemoryLogReaderWriter,
		&env.renderMetrics,
		env.config.Editor.UsesRelativeLineNumbers(),
	)
	render := func() { renderer.Render(s) }

	reader := tui.NewKeyReader(ctx, screen.GetEventPollable(), screen, render)
	stopInterrupt := tui.InterruptOnDone(ctx, screen)

	render()
	err = s.Run(ctx, reader, render)

	stopInterrupt()
	screen.Fini()
	log.Logger = env.stderrLogger

	env.logMetrics()
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("interrupted, quitting without writing")
		return nil
	}
	return err
}
