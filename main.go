// =============================================================================
// Event Ticket Sales Summary - Main Entry Point
// =============================================================================
//
// This is the main entry point for the ticket sales summary CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   summary report        - Aggregate attendee exports into a summary report
//   summary version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/frankieeedeee/event-summary-demo/cmd"
)

// main is the entry point of the application. It simply calls the Execute
// function from the cmd package, which initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
