// pkg/container/check.go

package container

import (
	"errors"
	"strings"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/execute"
	cerr "github.com/cockroachdb/errors"
	goversion "github.com/hashicorp/go-version"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// MinDockerVersion is the oldest Docker Engine release known to run the
// Coolify stack; anything older gets a warning, not a failure.
const MinDockerVersion = "20.10.0"

// CheckIfDockerInstalled checks if the Docker CLI is available and the
// daemon responds.
func CheckIfDockerInstalled(rc *ctl_io.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	log.Debug("Checking if Docker CLI is installed")
	if !execute.LookPath("docker") {
		return errors.New("docker not found in PATH")
	}

	_, err := execute.Run(rc.Ctx, execute.Options{
		Command: "docker",
		Args:    []string{"version", "--format", "{{.Server.Version}}"},
		Capture: true,
	})
	if err != nil {
		return cerr.WithHint(err, "Install Docker and ensure the daemon is running")
	}
	return nil
}

// CheckDockerVersion parses the server version and warns when it predates
// MinDockerVersion. Unparseable versions are logged and ignored.
func CheckDockerVersion(rc *ctl_io.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "docker",
		Args:    []string{"version", "--format", "{{.Server.Version}}"},
		Capture: true,
	})
	if err != nil {
		return cerr.Wrap(err, "query docker server version")
	}

	raw := strings.TrimSpace(out)
	current, err := goversion.NewVersion(raw)
	if err != nil {
		log.Warn("Could not parse docker version", zap.String("raw", raw), zap.Error(err))
		return nil
	}

	minimum := goversion.Must(goversion.NewVersion(MinDockerVersion))
	if current.LessThan(minimum) {
		log.Warn("Docker version is older than the minimum supported release",
			zap.String("installed", current.String()),
			zap.String("minimum", minimum.String()))
	} else {
		log.Debug("Docker version OK", zap.String("version", current.String()))
	}
	return nil
}

// CheckIfDockerComposeInstalled verifies compose availability, preferring
// the plugin over the legacy binary.
func CheckIfDockerComposeInstalled(rc *ctl_io.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	log.Debug("Checking for docker compose")
	commands := [][]string{
		{"docker", "compose", "version"},
		{"docker-compose", "version"},
	}
	for _, cmd := range commands {
		_, err := execute.Run(rc.Ctx, execute.Options{
			Command: cmd[0],
			Args:    cmd[1:],
			Capture: true,
		})
		if err == nil {
			return nil
		}
	}
	log.Warn("Docker Compose not found")
	return errors.New("docker compose not found")
}

// CheckRunning ensures the Docker daemon is active.
func CheckRunning(rc *ctl_io.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	log.Debug("Checking if Docker daemon is running")
	_, err := execute.Run(rc.Ctx, execute.Options{
		Command: "docker",
		Args:    []string{"info"},
		Capture: true,
	})
	if err != nil {
		return cerr.WithHint(err, "Docker is installed but the daemon is not running")
	}
	return nil
}

// EnsureDockerInstalled checks for Docker and installs it when missing.
// Re-running against a host that already has Docker is a no-op.
func EnsureDockerInstalled(rc *ctl_io.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	log.Info("Checking Docker installation")

	if err := CheckIfDockerInstalled(rc); err == nil {
		log.Info("Docker is already installed")

		if err := CheckRunning(rc); err != nil {
			return cerr.WithHint(err, "Start Docker and try again")
		}
		return CheckDockerVersion(rc)
	}

	log.Info("Docker not found, proceeding with installation")

	if err := InstallDocker(rc); err != nil {
		return cerr.Wrap(err, "install Docker")
	}

	log.Info("Docker installation completed")
	return CheckDockerVersion(rc)
}
