package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usefuulness/AirStatus/internal/bootstrap"
	"github.com/usefuulness/AirStatus/internal/config"
	"github.com/usefuulness/AirStatus/internal/doctor"
	"github.com/usefuulness/AirStatus/internal/logging"
	"github.com/usefuulness/AirStatus/internal/scanner"
	"github.com/usefuulness/AirStatus/internal/ui"
	"github.com/usefuulness/AirStatus/internal/watch"
)

// Command flags
var (
	configPath  string
	scannerPath string
	interpreter string
	minRSSI     int
	debugFlag   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/airstatus/config.yaml)")

	for _, cmd := range []*cobra.Command{rootCmd, watchCmd} {
		cmd.Flags().StringVar(&scannerPath, "scanner", "", "Path to the scanner script (overrides config)")
		cmd.Flags().StringVar(&interpreter, "interpreter", "", "Python interpreter to use (overrides config)")
		cmd.Flags().IntVar(&minRSSI, "min-rssi", 0, "Minimum signal strength in dBm (overrides config)")
		cmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable scanner debug output and the raw-payload trailer")
	}
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("scanner") {
		cfg.Scanner = scannerPath
	}
	if cmd.Flags().Changed("interpreter") {
		cfg.Interpreter = interpreter
	}
	if cmd.Flags().Changed("min-rssi") {
		cfg.MinRSSI = minRSSI
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugFlag
	}
	return cfg, nil
}

var watchCmd = &cobra.Command{
	Use:   "watch [-- scanner args…]",
	Short: "Launch the scanner and render its output live",
	Long: `Spawn the BLE scanner subprocess and render its line output as a
live dashboard: a busy spinner until the first record arrives, then one
colorized block per line (status badge, battery gauges with charging
marks, dimmed passthrough for diagnostic text).

Arguments after -- are forwarded to the scanner unchanged.`,
	Example: `  # Watch with defaults
  airstatus

  # Only consider strong beacons, no debug trailer
  airstatus watch --min-rssi -60 --debug=false

  # Forward an output file argument to the scanner
  airstatus watch -- /tmp/airstatus.log`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	profile := ui.DetectProfile()
	controller := watch.NewController(profile, cfg.Debug, nil, logging.GetLogger())
	return controller.Run(cmd.Context(), scanner.FromConfig(cfg, args))
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the host's Bluetooth stack",
	Long: `Run read-only diagnostics: Python interpreter, scanner script,
bluetooth.service state, rfkill block state, and adapter visibility.
Nothing on the host is modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := logging.InitializeFromEnv(); err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		profile := ui.DetectProfile()
		report := doctor.Run(cmd.Context(), cfg, logging.GetLogger())
		fmt.Println()
		fmt.Print(report.Render(profile))

		if !report.Healthy() {
			cmd.SilenceErrors = true
			return fmt.Errorf("host diagnostics failed")
		}
		return nil
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the scanner's runtime environment",
	Long: `Create a private virtualenv under the user data directory and
install the scanner's BLE library into it. The command is idempotent:
steps whose result already exists are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := logging.InitializeFromEnv(); err != nil {
			return err
		}

		profile := ui.DetectProfile()
		fmt.Println()
		return bootstrap.Run(cmd.Context(), nil, profile, logging.GetLogger())
	},
}
