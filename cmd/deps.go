package cmd

import (
	"github.com/razmans/devlog/internal/cli"
)

// deps is the global dependencies instance used by commands.
// In production, this is cli.DefaultDeps(). Tests can replace it.
var deps = cli.DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = cli.DefaultDeps()
}
