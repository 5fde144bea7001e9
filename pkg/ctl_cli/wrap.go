// pkg/ctl_cli/wrap.go

package ctl_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_err"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/logger"
	"github.com/spf13/cobra"
)

// Wrap adapts a RuntimeContext handler to a cobra RunE, adding panic
// recovery, span lifecycle, and error classification.
func Wrap(fn func(rc *ctl_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.InitFallback()

		rc := ctl_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		rc.LogExecutionContext()

		err = fn(rc, cmd, args)
		return ctl_err.WrapSystem(err)
	}
}
