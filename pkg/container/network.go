// pkg/container/network.go

package container

import (
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/execute"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// EnsureNetwork checks if the named Docker network exists and creates it
// if not. Re-running against an existing network is a no-op.
func EnsureNetwork(rc *ctl_io.RuntimeContext, name string) error {
	log := otelzap.Ctx(rc.Ctx)

	if name == "" {
		return cerr.New("network name must not be empty")
	}

	// ASSESS
	_, err := execute.Run(rc.Ctx, execute.Options{
		Command: "docker",
		Args:    []string{"network", "inspect", name},
		Capture: true,
	})
	if err == nil {
		log.Info("Docker network already exists", zap.String("network", name))
		return nil
	}

	// INTERVENE
	log.Info("Creating Docker network", zap.String("network", name))
	out, err := execute.Run(rc.Ctx, execute.Options{
		Command: "docker",
		Args:    []string{"network", "create", "--driver", "bridge", name},
		Capture: true,
	})
	if err != nil {
		return cerr.Wrapf(err, "create network %s: %s", name, out)
	}

	log.Info("Created Docker network", zap.String("network", name))
	return nil
}
