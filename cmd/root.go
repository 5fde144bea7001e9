// cmd/root.go

package cmd

import (
	"os"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/cmd/install"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/cmd/service"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_err"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command for coolifyctl.
var RootCmd = &cobra.Command{
	Use:     "coolifyctl",
	Short:   "Install and manage a self-hosted Coolify instance",
	Long:    "coolifyctl installs Coolify on an Ubuntu host (Docker, compose manifest, systemd unit) and wraps its service lifecycle.",
	Version: shared.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	for _, subCmd := range []*cobra.Command{
		install.InstallCmd,
		service.ServiceCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command, mapping errors onto
// process exit codes.
func Execute() {
	defer shared.SafeSync()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if ctl_err.IsExpectedUserError(err) {
			logger.L().Warn("Command completed with user error", zap.Error(err))
		} else {
			logger.L().Error("Command failed", zap.Error(err))
		}
		os.Exit(ctl_err.GetExitCode(err))
	}
}
