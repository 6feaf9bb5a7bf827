package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/usefuulness/AirStatus/internal/config"
	"github.com/usefuulness/AirStatus/internal/ui"
)

// scannerDependency is the scanner's single Python dependency.
const scannerDependency = "bleak"

// installTimeout bounds the pip install step; venv creation and import
// probes get shorter timeouts.
const installTimeout = 5 * time.Minute

// Run performs the idempotent environment bootstrap: a system python3,
// a private virtualenv under the user data dir, and the scanner's BLE
// library inside it. Already-satisfied steps are skipped, and a failed
// step stops the sequence; there is no retry policy here.
func Run(ctx context.Context, out io.Writer, p ui.Profile, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = os.Stdout
	}

	venv, err := config.VenvDir()
	if err != nil {
		return err
	}
	venvPython := filepath.Join(venv, "bin", "python")

	steps := ui.NewStepList(p, out,
		"Locate system python3",
		"Create virtualenv",
		"Check "+scannerDependency,
		"Install "+scannerDependency,
	)

	// Step 1: system interpreter.
	steps.Start(0)
	systemPython, err := exec.LookPath("python3")
	if err != nil {
		steps.Fail(0, "python3 not found in PATH")
		return fmt.Errorf("python3 not found: %w", err)
	}
	steps.Complete(0, systemPython)
	logger.Info("found system interpreter", zap.String("path", systemPython))

	// Step 2: virtualenv.
	steps.Start(1)
	if _, err := os.Stat(venvPython); err == nil {
		steps.Skip(1, "already present")
	} else {
		venvCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if out, err := exec.CommandContext(venvCtx, systemPython, "-m", "venv", venv).CombinedOutput(); err != nil {
			steps.Fail(1, "venv creation failed")
			logger.Error("venv creation failed", zap.String("output", string(out)), zap.Error(err))
			return fmt.Errorf("failed to create virtualenv at %s: %w", venv, err)
		}
		steps.Complete(1, venv)
		logger.Info("created virtualenv", zap.String("path", venv))
	}

	// Step 3: is the dependency already importable?
	steps.Start(2)
	probeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if exec.CommandContext(probeCtx, venvPython, "-c", "import "+scannerDependency).Run() == nil {
		steps.Skip(2, "already installed")
		steps.Skip(3, "nothing to do")
		fmt.Fprintln(out)
		fmt.Fprintln(out, steps.Summary())
		return nil
	}
	steps.Complete(2, "missing, will install")

	// Step 4: install it.
	steps.Start(3)
	installCtx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()
	pipOut, err := exec.CommandContext(installCtx, venvPython, "-m", "pip", "install", scannerDependency).CombinedOutput()
	if err != nil {
		steps.Fail(3, "pip install failed")
		logger.Error("pip install failed", zap.String("output", string(pipOut)), zap.Error(err))
		return fmt.Errorf("failed to install %s: %w", scannerDependency, err)
	}
	steps.Complete(3, "")
	logger.Info("installed scanner dependency", zap.String("package", scannerDependency))

	fmt.Fprintln(out)
	fmt.Fprintln(out, steps.Summary())
	return nil
}
