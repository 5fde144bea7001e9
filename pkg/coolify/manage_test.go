package coolify

import (
	"context"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/container"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_err"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/execute"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// dryRunCommands captures the command strings execute would have run.
func dryRunCommands(logs *observer.ObservedLogs) []string {
	var cmds []string
	for _, entry := range logs.TakeAll() {
		if entry.Message != "Dry run mode - command not executed" {
			continue
		}
		if cmd, ok := entry.ContextMap()["command"].(string); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func TestManageDispatch(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	prevLogger, prevDryRun := execute.DefaultLogger, execute.DefaultDryRun
	execute.DefaultLogger = zap.New(core)
	execute.DefaultDryRun = true
	t.Cleanup(func() {
		execute.DefaultLogger = prevLogger
		execute.DefaultDryRun = prevDryRun
	})

	rc := ctl_io.NewContext(context.Background(), "test")
	compose := strings.Join(container.ComposeCommand(), " ")

	tests := []struct {
		op   string
		want []string
	}{
		{op: "start", want: []string{"systemctl start coolify"}},
		{op: "stop", want: []string{"systemctl stop coolify"}},
		{op: "restart", want: []string{"systemctl restart coolify"}},
		{op: "status", want: []string{"systemctl status coolify"}},
		{op: "logs", want: []string{
			compose + " -f " + shared.CoolifyComposeFile + " logs -f",
		}},
		{op: "update", want: []string{
			compose + " -f " + shared.CoolifyComposeFile + " pull",
			compose + " -f " + shared.CoolifyComposeFile + " up -d",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			if strings.HasPrefix(tt.want[0], "systemctl") && !execute.LookPath("systemctl") {
				t.Skip("systemctl not available on this host")
			}

			logs.TakeAll()
			require.NoError(t, Manage(rc, tt.op))
			assert.Equal(t, tt.want, dryRunCommands(logs))
		})
	}
}

func TestManageUnknownOperation(t *testing.T) {
	rc := ctl_io.NewContext(context.Background(), "test")

	err := Manage(rc, "destroy")
	require.Error(t, err)
	assert.True(t, ctl_err.IsExpectedUserError(err))
	assert.Contains(t, err.Error(), Usage())
}
