// =============================================================================
// Address Label Converter - Main Entry Point
// =============================================================================
//
// USAGE:
//   labelconv process   - Convert every file in the input directory
//   labelconv import    - Load one file into the editing session
//   labelconv export    - Write the session as a label file
//   labelconv --help    - List all commands
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Conversion pipeline, parsers, export, session
//   - pkg/utils/ : File discovery, archiving and log files
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/address-label-converter/cmd"
)

func main() {
	cmd.Execute()
}
