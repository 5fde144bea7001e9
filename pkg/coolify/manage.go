// pkg/coolify/manage.go

package coolify

import (
	"strings"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/container"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_err"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/systemd"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Operation is one of the closed set of management commands.
type Operation string

const (
	OpStart   Operation = "start"
	OpStop    Operation = "stop"
	OpRestart Operation = "restart"
	OpStatus  Operation = "status"
	OpLogs    Operation = "logs"
	OpUpdate  Operation = "update"
)

// Operations lists every recognized management operation, in usage order.
var Operations = []Operation{OpStart, OpStop, OpRestart, OpStatus, OpLogs, OpUpdate}

// Usage returns the one-line usage string for the management dispatch.
func Usage() string {
	ops := make([]string, len(Operations))
	for i, op := range Operations {
		ops[i] = string(op)
	}
	return "usage: coolifyctl service {" + strings.Join(ops, "|") + "}"
}

// IsValidOperation reports whether op names a recognized operation.
func IsValidOperation(op string) bool {
	for _, known := range Operations {
		if string(known) == op {
			return true
		}
	}
	return false
}

// Manage dispatches one management operation against the installed
// service. Unknown operations yield a user error carrying the usage line.
func Manage(rc *ctl_io.RuntimeContext, op string) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("Managing Coolify service", zap.String("operation", op))

	switch Operation(op) {
	case OpStart:
		return systemd.RunSystemctl(rc, "start", shared.CoolifyServiceName)
	case OpStop:
		return systemd.RunSystemctl(rc, "stop", shared.CoolifyServiceName)
	case OpRestart:
		return systemd.RunSystemctl(rc, "restart", shared.CoolifyServiceName)
	case OpStatus:
		return systemd.RunSystemctl(rc, "status", shared.CoolifyServiceName)
	case OpLogs:
		return container.ComposeLogs(rc, shared.CoolifyComposeFile)
	case OpUpdate:
		if err := container.ComposePull(rc, shared.CoolifyComposeFile); err != nil {
			return err
		}
		return container.ComposeUp(rc, shared.CoolifyComposeFile)
	default:
		return ctl_err.NewUserError("unknown command %q\n%s", op, Usage())
	}
}
