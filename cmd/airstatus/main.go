// Airstatus is an operator-facing launcher for a Bluetooth Low Energy
// AirPods status scanner.
//
// It prepares the scanner's runtime environment, runs diagnostics
// against the host's Bluetooth stack, launches the scanner subprocess,
// and renders its line-oriented JSON output as a live, colorized
// terminal dashboard.
//
// Usage:
//
//	airstatus [command] [flags] [-- scanner args…]
//
// Running without a subcommand starts the live dashboard.
// See 'airstatus --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usefuulness/AirStatus/internal/logging"
	"github.com/usefuulness/AirStatus/internal/version"
	"github.com/usefuulness/AirStatus/internal/watch"
)

// exitInterrupt is the conventional "terminated by interrupt" status.
const exitInterrupt = 130

func main() {
	os.Exit(run())
}

// run executes the CLI and maps the result to an exit status. Exiting
// from here, not main, lets the deferred log flush run on every path.
func run() int {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, watch.ErrInterrupted) {
			return exitInterrupt
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "airstatus",
	Short: "AirPods battery status dashboard",
	Long: `A launcher and live dashboard for the AirStatus BLE scanner.

Spawns the Python scanner subprocess, classifies its line output, and
renders status records as colorized dashboard entries. Run 'airstatus
setup' once to install the scanner environment and 'airstatus doctor'
to diagnose the host's Bluetooth stack.

If no command is specified, the live dashboard starts.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: start watching when no subcommand given
		return runWatch(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("airstatus %s\n", version.Full())
	},
}
