// pkg/platform/apt.go
package platform

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/execute"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// AptUpdate refreshes the package index. apt can lose the race against
// unattended-upgrades holding the dpkg lock, so one retry is allowed.
func AptUpdate(rc *ctl_io.RuntimeContext) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("Updating apt package index")

	if err := execute.RetryCommand(rc.Ctx, 2, 10*time.Second, "apt-get", "update"); err != nil {
		return cerr.Wrap(err, "apt-get update")
	}
	return nil
}

// AptInstall installs packages non-interactively. Idempotent: apt treats
// already-installed packages as a no-op.
func AptInstall(rc *ctl_io.RuntimeContext, packages ...string) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("Installing packages via apt", zap.Strings("packages", packages))

	args := append([]string{"install", "-y"}, packages...)
	_, err := execute.Run(rc.Ctx, execute.Options{
		Command: "apt-get",
		Args:    args,
		Timeout: 10 * time.Minute,
	})
	if err != nil {
		return cerr.Wrapf(err, "apt-get install %s", strings.Join(packages, " "))
	}
	return nil
}

// IsDebianLike reports whether /etc/os-release identifies a Debian-family
// distribution (which includes Ubuntu).
func IsDebianLike(rc *ctl_io.RuntimeContext) bool {
	logger := otelzap.Ctx(rc.Ctx)

	file, err := os.Open("/etc/os-release")
	if err != nil {
		logger.Warn("Could not read /etc/os-release, assuming Debian-like", zap.Error(err))
		return true
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close os-release", zap.Error(closeErr))
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "ID=") || strings.HasPrefix(line, "ID_LIKE=") {
			v := strings.Trim(strings.SplitN(line, "=", 2)[1], `"`)
			if strings.Contains(v, "debian") || strings.Contains(v, "ubuntu") {
				return true
			}
		}
	}
	return false
}
