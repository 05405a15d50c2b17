// Package cli provides the command-line interface for piecemeal.
package cli

// CommandLineOpts are the global options and commands, for `go-flags` to parse
// command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped while the TUI is up)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	LogLevel      string `long:"log-level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info" description:"minimum level of log messages"`

	Config string `short:"c" long:"config" description:"path to the config file (default: $PIECEMEAL_HOME/config.yaml or $HOME/.config/piecemeal/config.yaml)" value-name:"<file>"`
	Theme  string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`

	EditCommand    EditCommand    `command:"edit" description:"edit a file (default command)" subcommands-optional:"true"`
	ReplayCommand  ReplayCommand  `command:"replay" description:"apply a key sequence to a file without a terminal" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" description:"show the program version" subcommands-optional:"true"`
}

// Opts holds the parsed command line.
var Opts CommandLineOpts
