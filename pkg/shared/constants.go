// pkg/shared/constants.go

package shared

import "os"

// Version is stamped at build time via -ldflags.
var Version = "dev"

const (
	// CoolifyDir is the install root for the Coolify stack.
	CoolifyDir = "/opt/coolify"

	// CoolifyComposeFile is the generated compose manifest path.
	CoolifyComposeFile = CoolifyDir + "/docker-compose.yml"

	// CoolifyManageScript is the generated standalone management wrapper.
	CoolifyManageScript = CoolifyDir + "/manage-coolify.sh"

	// CoolifyServiceName is the systemd unit name (without .service suffix).
	CoolifyServiceName = "coolify"

	// CoolifyUnitPath is where the systemd unit file is written.
	CoolifyUnitPath = "/etc/systemd/system/coolify.service"

	// CoolifyNetworkName is the external docker network the stack attaches to.
	CoolifyNetworkName = "coolify"

	// PortCoolify is the host port the Coolify UI is published on.
	PortCoolify = 8000

	// ComposeBinaryPath is where the legacy docker-compose binary is
	// installed when the compose plugin is unavailable.
	ComposeBinaryPath = "/usr/local/bin/docker-compose"
)

const (
	DirPermStandard  os.FileMode = 0755
	FilePermStandard os.FileMode = 0644
	FilePermExec     os.FileMode = 0755
	FilePermSecret   os.FileMode = 0600
)

// BackupTimestampLayout produces the 14-digit suffix used by the
// rename-aside backup of a pre-existing install directory.
const BackupTimestampLayout = "20060102150405"
