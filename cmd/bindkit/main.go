package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╗ ┬┌┐┌┌┬┐┬┌─┬┌┬┐
  ╠╩╗││││ ││├┴┐│ │
  ╚═╝┴┘└┘─┴┘┴ ┴┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "bindkit",
		Short: "Declarative event binding for server-hosted documents",
		Long: `Bindkit binds declared events to named handlers.

Elements declare their events and handlers in paired attributes:

  <button data-events="click" data-handlers="onSave">Save</button>

One binding pass scans the document, validates every declaration
against the handler registry, and attaches the listeners. The
bindkit server hosts a bound document and bridges native browser
events into it over WebSocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		checkCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Bindkit ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
