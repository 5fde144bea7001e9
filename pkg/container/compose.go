// pkg/container/compose.go

package container

import (
	"time"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/execute"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ComposeCommand resolves which compose front-end to use. It prefers the
// `docker compose` plugin and falls back to the legacy binary, returning
// the argv prefix to prepend to compose subcommands.
func ComposeCommand() []string {
	if execute.LookPath("docker") {
		return []string{"docker", "compose"}
	}
	if execute.LookPath("docker-compose") {
		return []string{"docker-compose"}
	}
	// docker is the normal case; let execution fail with a clear error.
	return []string{"docker", "compose"}
}

// composeRun executes a compose subcommand against the given manifest.
func composeRun(rc *ctl_io.RuntimeContext, composeFile string, timeout time.Duration, sub ...string) error {
	base := ComposeCommand()
	args := append(base[1:], "-f", composeFile)
	args = append(args, sub...)

	_, err := execute.Run(rc.Ctx, execute.Options{
		Command: base[0],
		Args:    args,
		Timeout: timeout,
	})
	return err
}

// ComposeUp starts the stack detached.
func ComposeUp(rc *ctl_io.RuntimeContext, composeFile string) error {
	otelzap.Ctx(rc.Ctx).Info("Starting compose stack", zap.String("file", composeFile))

	if err := composeRun(rc, composeFile, 15*time.Minute, "up", "-d"); err != nil {
		return cerr.WithHint(err, "Failed to run docker compose up")
	}
	return nil
}

// ComposePull pulls current images for the stack.
func ComposePull(rc *ctl_io.RuntimeContext, composeFile string) error {
	otelzap.Ctx(rc.Ctx).Info("Pulling compose images", zap.String("file", composeFile))

	if err := composeRun(rc, composeFile, 15*time.Minute, "pull"); err != nil {
		return cerr.WithHint(err, "Failed to pull compose images")
	}
	return nil
}

// ComposeLogs follows the stack logs until interrupted.
func ComposeLogs(rc *ctl_io.RuntimeContext, composeFile string) error {
	otelzap.Ctx(rc.Ctx).Info("Following compose logs", zap.String("file", composeFile))

	// Follow mode runs until the user interrupts it.
	if err := composeRun(rc, composeFile, 24*time.Hour, "logs", "-f"); err != nil {
		return cerr.WithHint(err, "Failed to follow compose logs")
	}
	return nil
}

// ContainerRunning reports whether a container with the given name is up.
// The filter is anchored: docker matches name filters as substrings, so an
// unanchored "coolify" would also match "coolify-proxy".
func ContainerRunning(rc *ctl_io.RuntimeContext, name string) (bool, error) {
	out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "docker",
		Args:    []string{"ps", "--filter", "name=^" + name + "$", "--format", "{{.Names}}\t{{.Status}}"},
		Capture: true,
	})
	if err != nil {
		return false, cerr.Wrap(err, "docker ps")
	}
	return len(out) > 0, nil
}
