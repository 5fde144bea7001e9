package coolify

import (
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/container"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewInstallerDefaults(t *testing.T) {
	t.Parallel()

	ins := NewInstaller(nil, nil)

	assert.Equal(t, shared.CoolifyDir, ins.config.InstallDir)
	assert.Equal(t, shared.CoolifyComposeFile, ins.config.ComposeFile)
	assert.Equal(t, shared.CoolifyManageScript, ins.config.ManageScript)
	assert.Equal(t, shared.CoolifyUnitPath, ins.config.UnitPath)
	assert.Equal(t, shared.CoolifyServiceName, ins.config.ServiceName)
	assert.Equal(t, shared.CoolifyNetworkName, ins.config.NetworkName)
	assert.Equal(t, DefaultImage, ins.config.Image)
	assert.Equal(t, DefaultContainerName, ins.config.ContainerName)
	assert.Equal(t, shared.PortCoolify, ins.config.Port)
	assert.False(t, ins.config.ForceReinstall)
}

func TestNewInstallerKeepsOverrides(t *testing.T) {
	t.Parallel()

	ins := NewInstaller(nil, &InstallConfig{
		InstallDir: "/srv/coolify",
		Port:       9000,
		Image:      "coollabsio/coolify:v4",
	})

	assert.Equal(t, "/srv/coolify", ins.config.InstallDir)
	assert.Equal(t, "/srv/coolify/docker-compose.yml", ins.config.ComposeFile)
	assert.Equal(t, "/srv/coolify/manage-coolify.sh", ins.config.ManageScript)
	assert.Equal(t, 9000, ins.config.Port)
	assert.Equal(t, "coollabsio/coolify:v4", ins.config.Image)
}

func TestRenderCompose(t *testing.T) {
	cfg := NewInstaller(nil, nil).config
	cfg.SetSecrets(
		strings.Repeat("a", 32),
		strings.Repeat("b", 64),
	)

	rendered, err := RenderCompose(zap.NewNop(), cfg)
	require.NoError(t, err)

	// The generated secrets appear verbatim and no placeholder survives.
	assert.Contains(t, rendered, `APP_ID: "`+strings.Repeat("a", 32)+`"`)
	assert.Contains(t, rendered, `SECRET_KEY: "`+strings.Repeat("b", 64)+`"`)
	assert.NotContains(t, rendered, LegacyAppIDPlaceholder)
	assert.NotContains(t, rendered, LegacySecretKeyPlaceholder)
	assert.Contains(t, rendered, `"8000:8000"`)

	// The rendered manifest passes the same validation install applies.
	parsed, err := container.ValidateManifest([]byte(rendered),
		LegacyAppIDPlaceholder, LegacySecretKeyPlaceholder)
	require.NoError(t, err)

	require.Contains(t, parsed.Services, "coolify")
	assert.Equal(t, DefaultImage, parsed.Services["coolify"].Image)
	assert.True(t, parsed.Networks[shared.CoolifyNetworkName].External)
	assert.Len(t, parsed.Volumes, 4)
}

func TestIsValidOperation(t *testing.T) {
	t.Parallel()

	for _, op := range Operations {
		assert.True(t, IsValidOperation(string(op)), "operation %s", op)
	}

	for _, op := range []string{"", "install", "Start", "destroy"} {
		assert.False(t, IsValidOperation(op), "operation %q", op)
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "usage: coolifyctl service {start|stop|restart|status|logs|update}", Usage())
}
