// pkg/coolify/types.go

package coolify

import (
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
)

const (
	// DefaultImage is the Coolify container image deployed by install.
	DefaultImage = "coollabsio/coolify:latest"

	// DefaultContainerName names the single service container.
	DefaultContainerName = "coolify"
)

// Placeholder literals that older install tooling left behind when its
// text substitution silently no-opped. The rendered manifest is scanned
// for them and install fails hard if either survives.
const (
	LegacyAppIDPlaceholder     = "unique-app-id-for-this-instance"
	LegacySecretKeyPlaceholder = "your-secret-key-change-this"
)

// InstallConfig holds everything the installer needs. Zero values are
// filled with defaults by NewInstaller.
type InstallConfig struct {
	InstallDir    string `validate:"required"`
	ComposeFile   string `validate:"required"`
	ManageScript  string `validate:"required"`
	UnitPath      string `validate:"required"`
	ServiceName   string `validate:"required"`
	NetworkName   string `validate:"required"`
	Image         string `validate:"required"`
	ContainerName string `validate:"required"`
	Port          int    `validate:"required,min=1,max=65535"`

	// ForceReinstall allows installing over a detected existing install.
	// The previous install dir is still renamed aside, never destroyed.
	ForceReinstall bool

	// SkipVerify skips the post-install unit/container verification.
	SkipVerify bool

	// Generated per install; never read from config input.
	appID     string
	secretKey string
}

// InstallState is the assessment of what already exists on the host.
type InstallState struct {
	DirExists      bool
	ComposeExists  bool
	UnitExists     bool
	ServiceRunning bool
	Installed      bool
}

// Installer drives the install flow.
type Installer struct {
	rc     *ctl_io.RuntimeContext
	config *InstallConfig
}

// NewInstaller creates an installer, applying defaults for unset fields.
func NewInstaller(rc *ctl_io.RuntimeContext, config *InstallConfig) *Installer {
	if config == nil {
		config = &InstallConfig{}
	}
	if config.InstallDir == "" {
		config.InstallDir = shared.CoolifyDir
	}
	if config.ComposeFile == "" {
		if config.InstallDir == shared.CoolifyDir {
			config.ComposeFile = shared.CoolifyComposeFile
		} else {
			config.ComposeFile = filepath.Join(config.InstallDir, "docker-compose.yml")
		}
	}
	if config.ManageScript == "" {
		if config.InstallDir == shared.CoolifyDir {
			config.ManageScript = shared.CoolifyManageScript
		} else {
			config.ManageScript = filepath.Join(config.InstallDir, "manage-coolify.sh")
		}
	}
	if config.UnitPath == "" {
		config.UnitPath = shared.CoolifyUnitPath
	}
	if config.ServiceName == "" {
		config.ServiceName = shared.CoolifyServiceName
	}
	if config.NetworkName == "" {
		config.NetworkName = shared.CoolifyNetworkName
	}
	if config.Image == "" {
		config.Image = DefaultImage
	}
	if config.ContainerName == "" {
		config.ContainerName = DefaultContainerName
	}
	if config.Port == 0 {
		config.Port = shared.PortCoolify
	}

	return &Installer{
		rc:     rc,
		config: config,
	}
}
