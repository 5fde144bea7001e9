// pkg/container/install.go

package container

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/platform"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ComposeReleaseVersion is the docker-compose release fetched when the
// compose plugin is unavailable and the legacy binary must be installed.
const ComposeReleaseVersion = "v2.24.6"

// InstallDocker installs Docker Engine from the distribution repositories
// and starts the daemon. Debian-family hosts only.
func InstallDocker(rc *ctl_io.RuntimeContext) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	logger.Info("Assessing host for Docker installation")
	if !platform.IsDebianLike(rc) {
		return cerr.New("unsupported distribution: only Debian-family hosts (Ubuntu) are supported")
	}

	// INTERVENE
	if err := platform.AptUpdate(rc); err != nil {
		return err
	}
	if err := platform.AptInstall(rc, "docker.io"); err != nil {
		return err
	}

	logger.Info("Enabling and starting the Docker daemon")
	if err := execute.RunSimple(rc.Ctx, "systemctl", "enable", "--now", "docker"); err != nil {
		return cerr.Wrap(err, "enable docker daemon")
	}

	// EVALUATE
	if err := CheckRunning(rc); err != nil {
		return cerr.Wrap(err, "docker daemon did not come up after install")
	}
	logger.Info("Docker installed and running")
	return nil
}

// EnsureComposeInstalled checks for compose and, when neither the plugin
// nor the legacy binary exists, downloads the release binary to
// /usr/local/bin/docker-compose and marks it executable.
func EnsureComposeInstalled(rc *ctl_io.RuntimeContext) error {
	logger := otelzap.Ctx(rc.Ctx)

	if err := CheckIfDockerComposeInstalled(rc); err == nil {
		logger.Info("Docker Compose is available")
		return nil
	}

	logger.Info("Docker Compose not found, installing legacy binary",
		zap.String("version", ComposeReleaseVersion),
		zap.String("path", shared.ComposeBinaryPath))

	url := fmt.Sprintf(
		"https://github.com/docker/compose/releases/download/%s/docker-compose-%s-%s",
		ComposeReleaseVersion, kernelName(), machineArch())

	_, err := execute.Run(rc.Ctx, execute.Options{
		Command: "curl",
		Args:    []string{"-fsSL", "-o", shared.ComposeBinaryPath, url},
		Timeout: 5 * time.Minute,
		Retries: 2,
		Delay:   5 * time.Second,
	})
	if err != nil {
		return cerr.Wrapf(err, "download docker-compose from %s", url)
	}

	if err := os.Chmod(shared.ComposeBinaryPath, shared.FilePermExec); err != nil {
		return cerr.Wrap(err, "chmod docker-compose binary")
	}

	// EVALUATE
	if err := CheckIfDockerComposeInstalled(rc); err != nil {
		return cerr.Wrap(err, "docker-compose binary installed but not functional")
	}
	logger.Info("Docker Compose installed")
	return nil
}

// kernelName matches the `uname -s` convention used by compose release
// asset names.
func kernelName() string {
	switch runtime.GOOS {
	case "linux":
		return "linux"
	case "darwin":
		return "darwin"
	default:
		return runtime.GOOS
	}
}

// machineArch matches the `uname -m` convention used by compose release
// asset names.
func machineArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armv7"
	default:
		return runtime.GOARCH
	}
}
