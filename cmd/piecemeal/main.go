package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/piecemeal/internal/control/cli"
)

// MAIN
func main() {
	// set up stderr logger by default, commands may choose to change this
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// parse the flags
	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = true

	args, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		log.Fatal().Err(err).Msg("could not parse command line")
	}

	if cli.Opts.Version {
		cmd := cli.VersionCommand{}
		if err := cmd.Execute(args); err != nil {
			log.Fatal().Err(err).Msg("exited with error")
		}
		return
	}

	// no command given, edit by default
	if parser.Active == nil {
		cmd := cli.EditCommand{}
		if err := cmd.Execute(args); err != nil {
			log.Fatal().Err(err).Msg("exited with error")
		}
	}
}
