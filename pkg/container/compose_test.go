package container

import (
	"context"
	"testing"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/execute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContainerRunningFilterIsAnchored(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	prevLogger, prevDryRun := execute.DefaultLogger, execute.DefaultDryRun
	execute.DefaultLogger = zap.New(core)
	execute.DefaultDryRun = true
	t.Cleanup(func() {
		execute.DefaultLogger = prevLogger
		execute.DefaultDryRun = prevDryRun
	})

	rc := ctl_io.NewContext(context.Background(), "test")

	running, err := ContainerRunning(rc, "coolify")
	require.NoError(t, err)
	assert.False(t, running)

	var cmd string
	for _, entry := range logs.TakeAll() {
		if entry.Message == "Dry run mode - command not executed" {
			cmd, _ = entry.ContextMap()["command"].(string)
		}
	}
	require.NotEmpty(t, cmd)

	// An unanchored name filter would also match e.g. "coolify-proxy".
	assert.Contains(t, cmd, "name=^coolify$")
	assert.NotContains(t, cmd, "name=coolify ")
}
