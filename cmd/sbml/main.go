// Command sbml is the SBML interpreter's process entry point — the part
// spec.md §1 explicitly places out of scope for the core: argument
// parsing, reading the source file, and process exit codes.
package main

import (
	"os"

	"github.com/pchan37/glowing-engine/cmd/sbml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
