package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCoolifyComposeTemplate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := CoolifyComposeTemplate.Execute(&buf, map[string]interface{}{
		"Image":         "coollabsio/coolify:latest",
		"ContainerName": "coolify",
		"HostPort":      8000,
		"AppID":         strings.Repeat("x", 32),
		"SecretKey":     strings.Repeat("y", 64),
		"NetworkName":   "coolify",
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "image: coollabsio/coolify:latest")
	assert.Contains(t, out, `- "8000:8000"`)
	assert.Contains(t, out, "/var/run/docker.sock:/var/run/docker.sock")
	for _, vol := range []string{"coolify-db:", "coolify-redis:", "coolify-backups:", "coolify-ssh:"} {
		assert.Contains(t, out, vol)
	}
	assert.Contains(t, out, "external: true")
}

func TestCoolifyComposeTemplateRejectsMissingKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := CoolifyComposeTemplate.Execute(&buf, map[string]interface{}{
		"Image": "coollabsio/coolify:latest",
	})
	assert.Error(t, err)
}

func TestCoolifyUnitTemplate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := CoolifyUnitTemplate.Execute(&buf, map[string]interface{}{
		"InstallDir":  "/opt/coolify",
		"ComposeFile": "/opt/coolify/docker-compose.yml",
		"ComposeBin":  "/usr/bin/docker compose",
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "Requires=docker.service")
	assert.Contains(t, out, "StartLimitIntervalSec=60")
	assert.Contains(t, out, "StartLimitBurst=3")
	assert.Contains(t, out, "WorkingDirectory=/opt/coolify")
	assert.Contains(t, out, "ExecStart=/usr/bin/docker compose -f /opt/coolify/docker-compose.yml up -d")
	assert.Contains(t, out, "ExecStop=/usr/bin/docker compose -f /opt/coolify/docker-compose.yml down")
	assert.Contains(t, out, "Restart=on-failure")
	assert.Contains(t, out, "TimeoutStartSec=0")
	assert.Contains(t, out, "WantedBy=multi-user.target")
}

func TestCoolifyManageScriptTemplate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := CoolifyManageScriptTemplate.Execute(&buf, map[string]interface{}{
		"ComposeFile": "/opt/coolify/docker-compose.yml",
		"ServiceName": "coolify",
		"ComposeBin":  "/usr/bin/docker compose",
	})
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "#!/usr/bin/env bash"))
	assert.Contains(t, out, `Usage: $0 {start|stop|restart|status|logs|update}`)
	for _, op := range []string{"start)", "stop)", "restart)", "status)", "logs)", "update)"} {
		assert.Contains(t, out, op)
	}
	assert.Contains(t, out, `systemctl start "$SERVICE"`)
	assert.Contains(t, out, `logs -f`)
	assert.Contains(t, out, `pull`)
}

func TestRendererEnforcesLimits(t *testing.T) {
	r := NewRenderer(zap.NewNop())

	out, err := r.Render(nil, CoolifyUnitTemplate, map[string]interface{}{
		"InstallDir":  "/opt/coolify",
		"ComposeFile": "/opt/coolify/docker-compose.yml",
		"ComposeBin":  "/usr/local/bin/docker-compose",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "ExecStart=/usr/local/bin/docker-compose")

	_, err = r.Render(nil, CoolifyUnitTemplate, map[string]interface{}{})
	assert.Error(t, err)
}
