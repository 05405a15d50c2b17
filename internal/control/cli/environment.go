package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/piecemeal/internal/config"
	"github.com/ja-he/piecemeal/internal/document"
	"github.com/ja-he/piecemeal/internal/potatolog"
	"github.com/ja-he/piecemeal/internal/session"
	"github.com/ja-he/piecemeal/internal/storage"
	"github.com/ja-he/piecemeal/internal/util"
)

// environment is everything a command needs to run an edit session.
type environment struct {
	config config.Config
	file   *storage.FileHandler

	processMetrics util.MetricsHandler
	renderMetrics  util.MetricsHandler

	stderrLogger zerolog.Logger
	tuiLogger    zerolog.Logger
}

// prepareEnvironment sets up logging, reads the configuration and determines
// the file to edit from the positional args.
func prepareEnvironment(opts *CommandLineOpts, args []string) (*environment, error) {
	env := &environment{}

	if err := env.setUpLogging(opts); err != nil {
		return nil, err
	}

	configData, err := readConfig(opts)
	if err != nil {
		return nil, err
	}
	env.config = configData

	path := configData.Editor.DefaultFile
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return nil, fmt.Errorf("expected at most one file, got %d (%s)", len(args), strings.Join(args, ", "))
	}
	if path == "" {
		return nil, storage.ErrEmptyPath
	}
	env.file = storage.NewFileHandler(path)

	return env, nil
}

// setUpLogging sets up the stderr logger used until (and unless) the TUI takes
// over the terminal, and the TUI logger writing to the in-memory log and,
// optionally, a file.
func (env *environment) setUpLogging(opts *CommandLineOpts) error {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", opts.LogLevel, err)
	}
	if opts.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	env.stderrLogger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var logWriter io.Writer
	if opts.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(opts.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging: %w", opts.LogOutputFile, err)
		}
		if opts.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	env.tuiLogger = zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(env.stderrLogger, env.tuiLogger))
	return nil
}

// readConfig reads the config file, falling back to the defaults if there is
// none.
func readConfig(opts *CommandLineOpts) (config.Config, error) {
	theme := config.Dark
	if opts.Theme == "light" {
		theme = config.Light
	}

	path := opts.Config
	if path == "" {
		path = filepath.Join(baseDirPath(), "config.yaml")
	}

	yamlData, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && opts.Config == "":
		log.Debug().Str("file", path).Msg("no config file, using defaults")
		yamlData = []byte{}
	case err != nil:
		return config.Config{}, fmt.Errorf("can't read config file '%s': %w", path, err)
	}

	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config file '%s': %w", path, err)
	}
	return configData, nil
}

func baseDirPath() string {
	piecemealHome := os.Getenv("PIECEMEAL_HOME")
	if piecemealHome != "" {
		return strings.TrimRight(piecemealHome, "/")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "piecemeal")
}

// newSession loads the file and returns a session editing it.
func (env *environment) newSession() (*session.Session, error) {
	content, err := env.file.Load()
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", env.file.Filename()).Int("bytes", len(content)).Msg("loaded file")

	return session.New(
		document.New(content),
		session.WithPersister(env.file),
		session.WithTabWidth(env.config.Editor.TabWidth),
		session.WithMetrics(&env.processMetrics),
	), nil
}

// runHeadless runs the session on the given input without rendering.
func (env *environment) runHeadless(ctx context.Context, s *session.Session, r io.ByteReader) error {
	err := s.Run(ctx, r, nil)
	env.logMetrics()
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("interrupted, quitting without writing")
		return nil
	}
	return err
}

func (env *environment) logMetrics() {
	log.Debug().
		Uint64("process-avg-us", env.processMetrics.Avg()).
		Uint64("render-avg-us", env.renderMetrics.Avg()).
		Msg("session metrics")
}
