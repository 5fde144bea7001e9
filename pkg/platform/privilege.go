// pkg/platform/privilege.go
package platform

import (
	"os"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_err"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"go.uber.org/zap"
)

// RequireRoot returns a user error when the process is not running with
// effective uid 0. Must be called before any mutating step.
func RequireRoot(rc *ctl_io.RuntimeContext) error {
	euid := os.Geteuid()
	rc.Log.Debug("Checking privileges", zap.Int("effective_uid", euid))

	if euid != 0 {
		return ctl_err.NewUserError(
			"this command must be run as root (try: sudo %s)", os.Args[0])
	}
	return nil
}

// IsRoot reports whether the process runs with effective uid 0.
func IsRoot() bool {
	return os.Geteuid() == 0
}
