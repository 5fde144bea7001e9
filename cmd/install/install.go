// cmd/install/install.go

package install

import (
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/coolify"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_cli"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDir        string
	flagPort       int
	flagImage      string
	flagForce      bool
	flagSkipVerify bool
)

// InstallCmd installs the Coolify stack on this host.
var InstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Coolify on this host",
	Long: `Install Coolify by:
- Checking for (and if missing, installing) Docker and Docker Compose
- Scaffolding the install directory, renaming any previous install aside
- Generating docker-compose.yml with fresh instance secrets
- Ensuring the coolify docker network exists
- Registering, enabling and starting the coolify systemd service
- Writing the standalone manage-coolify.sh wrapper

Must be run as root.`,
	Args: cobra.NoArgs,
	RunE: ctl_cli.Wrap(func(rc *ctl_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		rc.Log.Info("Starting Coolify installation",
			zap.String("dir", flagDir),
			zap.Int("port", flagPort),
			zap.Bool("force", flagForce))

		installer := coolify.NewInstaller(rc, &coolify.InstallConfig{
			InstallDir:     flagDir,
			Port:           flagPort,
			Image:          flagImage,
			ForceReinstall: flagForce,
			SkipVerify:     flagSkipVerify,
		})
		return installer.Install()
	}),
}

func init() {
	InstallCmd.Flags().StringVar(&flagDir, "dir", "", "install directory (default /opt/coolify)")
	InstallCmd.Flags().IntVar(&flagPort, "port", 0, "host port for the Coolify UI (default 8000)")
	InstallCmd.Flags().StringVar(&flagImage, "image", "", "Coolify container image (default "+coolify.DefaultImage+")")
	InstallCmd.Flags().BoolVar(&flagForce, "force", false, "reinstall over an existing installation")
	InstallCmd.Flags().BoolVar(&flagSkipVerify, "skip-verify", false, "skip post-install service verification")
}
