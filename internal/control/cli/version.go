package cli

import (
	"fmt"
	"os"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// VersionCommand is the `version` command, for `go-flags` to parse command
// line args into.
type VersionCommand struct {
}

// Execute shows the version.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	_, err := fmt.Fprintf(os.Stdout, "%s (%s)\n", version, hash)
	return err
}
