package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/usefuulness/AirStatus/internal/config"
)

// Status grades a single diagnostic check.
type Status int

const (
	// Pass means the check found a healthy state.
	Pass Status = iota
	// Warn means the check is degraded or indeterminate but will not
	// stop the launcher from running.
	Warn
	// Fail means the launcher will not work until this is fixed.
	Fail
)

// Check is the result of one read-only host diagnostic.
type Check struct {
	// Name is the human-readable name of the check
	Name string
	// Status grades the finding
	Status Status
	// Detail provides context (resolved path, service state, remedy hint)
	Detail string
}

// Report contains the results of all diagnostics.
type Report struct {
	Checks []Check
}

// Healthy reports whether no check failed outright.
func (r *Report) Healthy() bool {
	for _, c := range r.Checks {
		if c.Status == Fail {
			return false
		}
	}
	return true
}

// Run executes all host diagnostics in order. Every check is read-only
// and best-effort: a missing diagnostic tool downgrades to a warning
// instead of failing the report.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) *Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &Report{}
	checks := []func(context.Context, *config.Config) Check{
		checkInterpreter,
		checkScannerScript,
		checkBluetoothService,
		checkRFKill,
		checkAdapter,
	}
	for _, fn := range checks {
		c := fn(ctx, cfg)
		logger.Debug("doctor check",
			zap.String("name", c.Name),
			zap.Int("status", int(c.Status)),
			zap.String("detail", c.Detail),
		)
		report.Checks = append(report.Checks, c)
	}
	return report
}

// checkInterpreter verifies the Python interpreter exists and runs.
func checkInterpreter(ctx context.Context, cfg *config.Config) Check {
	check := Check{Name: "Python interpreter"}

	interpreter := cfg.ResolveInterpreter()
	path, err := exec.LookPath(interpreter)
	if err != nil {
		check.Status = Fail
		check.Detail = interpreter + " not found in PATH; install python3 or run 'airstatus setup'"
		return check
	}

	versionCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	out, err := exec.CommandContext(versionCtx, path, "--version").Output()
	if err != nil {
		check.Status = Fail
		check.Detail = fmt.Sprintf("%s found but failed to execute: %v", path, err)
		return check
	}

	check.Status = Pass
	check.Detail = fmt.Sprintf("%s (%s)", strings.TrimSpace(string(out)), path)
	return check
}

// checkScannerScript verifies the scanner script is present and readable.
func checkScannerScript(_ context.Context, cfg *config.Config) Check {
	check := Check{Name: "Scanner script"}

	info, err := os.Stat(cfg.Scanner)
	if err != nil {
		check.Status = Fail
		check.Detail = fmt.Sprintf("%s: %v", cfg.Scanner, err)
		return check
	}
	if info.IsDir() {
		check.Status = Fail
		check.Detail = cfg.Scanner + " is a directory, expected the scanner script"
		return check
	}

	check.Status = Pass
	check.Detail = cfg.Scanner
	return check
}

// checkBluetoothService queries systemd for the bluetooth unit state.
func checkBluetoothService(ctx context.Context, _ *config.Config) Check {
	check := Check{Name: "bluetooth.service"}

	if _, err := exec.LookPath("systemctl"); err != nil {
		check.Status = Warn
		check.Detail = "systemctl not available, cannot query service state"
		return check
	}

	queryCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	// is-active exits non-zero for any state but "active"; the output
	// still names the state, so read it either way.
	out, _ := exec.CommandContext(queryCtx, "systemctl", "is-active", "bluetooth.service").Output()

	state := strings.TrimSpace(string(out))
	return serviceCheck(check.Name, state)
}

// serviceCheck grades a systemd unit state string.
func serviceCheck(name, state string) Check {
	check := Check{Name: name, Detail: state}
	switch state {
	case "active":
		check.Status = Pass
	case "inactive", "failed", "dead":
		check.Status = Fail
		check.Detail = state + "; try: sudo systemctl start bluetooth"
	default:
		check.Status = Warn
		if state == "" {
			check.Detail = "state unknown"
		}
	}
	return check
}

// checkRFKill looks for soft or hard blocks on the bluetooth radio.
func checkRFKill(ctx context.Context, _ *config.Config) Check {
	check := Check{Name: "rfkill"}

	if _, err := exec.LookPath("rfkill"); err != nil {
		check.Status = Warn
		check.Detail = "rfkill not available, cannot query radio block state"
		return check
	}

	queryCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	out, err := exec.CommandContext(queryCtx, "rfkill", "list", "bluetooth").Output()
	if err != nil {
		check.Status = Warn
		check.Detail = fmt.Sprintf("rfkill query failed: %v", err)
		return check
	}

	soft, hard, found := parseRFKill(string(out))
	switch {
	case !found:
		check.Status = Warn
		check.Detail = "no bluetooth radio listed"
	case hard:
		check.Status = Fail
		check.Detail = "radio hard-blocked (hardware switch)"
	case soft:
		check.Status = Fail
		check.Detail = "radio soft-blocked; try: rfkill unblock bluetooth"
	default:
		check.Status = Pass
		check.Detail = "radio unblocked"
	}
	return check
}

// parseRFKill extracts block state from `rfkill list bluetooth` output.
// found is false when the output lists no device.
func parseRFKill(output string) (soft, hard, found bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(strings.ToLower(line))
		switch {
		case strings.HasPrefix(line, "soft blocked:"):
			found = true
			soft = soft || strings.HasSuffix(line, "yes")
		case strings.HasPrefix(line, "hard blocked:"):
			found = true
			hard = hard || strings.HasSuffix(line, "yes")
		}
	}
	return soft, hard, found
}

// checkAdapter looks for an hci device node exposed by the kernel.
func checkAdapter(_ context.Context, _ *config.Config) Check {
	check := Check{Name: "Bluetooth adapter"}

	entries, err := os.ReadDir("/sys/class/bluetooth")
	if err != nil {
		check.Status = Warn
		check.Detail = "cannot enumerate /sys/class/bluetooth: " + err.Error()
		return check
	}
	if len(entries) == 0 {
		check.Status = Fail
		check.Detail = "no hci device present"
		return check
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	check.Status = Pass
	check.Detail = strings.Join(names, ", ")
	return check
}
