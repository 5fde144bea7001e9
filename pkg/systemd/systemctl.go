// pkg/systemd/systemctl.go

package systemd

import (
	"fmt"
	"strings"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/execute"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// RunSystemctl executes a systemctl subcommand safely.
func RunSystemctl(rc *ctl_io.RuntimeContext, args ...string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - Validate systemctl is available
	if !execute.LookPath("systemctl") {
		return fmt.Errorf("systemctl not found: is this a systemd host?")
	}
	if len(args) == 0 {
		return fmt.Errorf("no systemctl subcommand given")
	}

	// INTERVENE
	logger.Debug("Executing systemctl command", zap.Strings("args", args))
	if err := execute.RunSimple(rc.Ctx, "systemctl", args...); err != nil {
		return fmt.Errorf("systemctl %s failed: %w", strings.Join(args, " "), err)
	}

	// EVALUATE
	logger.Debug("Systemctl command completed", zap.Strings("args", args))
	return nil
}

// DaemonReload makes systemd re-read unit files.
func DaemonReload(rc *ctl_io.RuntimeContext) error {
	return RunSystemctl(rc, "daemon-reload")
}

// EnableAndStart enables a unit at boot and starts it now.
func EnableAndStart(rc *ctl_io.RuntimeContext, unit string) error {
	if err := RunSystemctl(rc, "enable", unit); err != nil {
		return err
	}
	return RunSystemctl(rc, "start", unit)
}

// IsActive queries the ActiveState of a unit. It returns the state string
// ("active", "inactive", "failed", ...) without failing when the unit is
// simply not running.
func IsActive(rc *ctl_io.RuntimeContext, unit string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "systemctl",
		Args:    []string{"show", unit, "--property=ActiveState"},
		Capture: true,
	})
	if err != nil {
		return "unknown", fmt.Errorf("query unit state: %w", err)
	}

	state := "unknown"
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 && parts[0] == "ActiveState" {
			state = parts[1]
		}
	}

	logger.Debug("Unit state retrieved",
		zap.String("unit", unit),
		zap.String("state", state))
	return state, nil
}
