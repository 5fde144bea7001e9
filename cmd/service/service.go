// cmd/service/service.go

package service

import (
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/coolify"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_cli"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_err"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/platform"
	"github.com/spf13/cobra"
)

// ServiceCmd is the parent for the management dispatch. Each subcommand
// is a pass-through to systemctl or docker compose against the installed
// stack.
var ServiceCmd = &cobra.Command{
	Use:       "service {start|stop|restart|status|logs|update}",
	Short:     "Manage the installed Coolify service",
	ValidArgs: operationNames(),
	Args:      cobra.ExactArgs(1),
	RunE: ctl_cli.Wrap(func(rc *ctl_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		op := args[0]
		if !coolify.IsValidOperation(op) {
			return ctl_err.NewUserError("unknown command %q\n%s", op, coolify.Usage())
		}
		if err := platform.RequireRoot(rc); err != nil {
			return err
		}
		return coolify.Manage(rc, op)
	}),
}

func operationNames() []string {
	names := make([]string, len(coolify.Operations))
	for i, op := range coolify.Operations {
		names[i] = string(op)
	}
	return names
}
