package container

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `services:
  coolify:
    image: coollabsio/coolify:latest
    container_name: coolify
    restart: always
    ports:
      - "8000:8000"
    environment:
      APP_ID: "aaaabbbbccccddddeeeeffffgggghhhh"
      SECRET_KEY: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
    volumes:
      - /var/run/docker.sock:/var/run/docker.sock
      - coolify-db:/app/db
    networks:
      - coolify

networks:
  coolify:
    external: true

volumes:
  coolify-db:
  coolify-redis:
  coolify-backups:
  coolify-ssh:
`

func TestValidateManifest(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateManifest([]byte(sampleManifest),
		"unique-app-id-for-this-instance", "your-secret-key-change-this")
	require.NoError(t, err)

	require.Contains(t, cfg.Services, "coolify")
	svc := cfg.Services["coolify"]
	assert.Equal(t, "coollabsio/coolify:latest", svc.Image)
	assert.Equal(t, "always", svc.Restart)
	assert.Contains(t, svc.Ports, "8000:8000")

	require.Contains(t, cfg.Networks, "coolify")
	assert.True(t, cfg.Networks["coolify"].External)
	assert.Len(t, cfg.Volumes, 4)
}

func TestValidateManifestRejectsPlaceholders(t *testing.T) {
	t.Parallel()

	leaky := strings.Replace(sampleManifest,
		"aaaabbbbccccddddeeeeffffgggghhhh", "unique-app-id-for-this-instance", 1)

	_, err := ValidateManifest([]byte(leaky),
		"unique-app-id-for-this-instance", "your-secret-key-change-this")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique-app-id-for-this-instance")
}

func TestValidateManifestRejectsBadYAML(t *testing.T) {
	t.Parallel()

	_, err := ValidateManifest([]byte("services:\n  coolify:\n   image: [broken"))
	assert.Error(t, err)
}

func TestValidateManifestRejectsEmptyServices(t *testing.T) {
	t.Parallel()

	_, err := ValidateManifest([]byte("networks:\n  coolify:\n    external: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no services defined")
}

func TestValidateManifestRequiresImage(t *testing.T) {
	t.Parallel()

	_, err := ValidateManifest([]byte("services:\n  coolify:\n    restart: always\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image reference is required")
}

func TestComposeCommandPrefersDockerPlugin(t *testing.T) {
	t.Parallel()

	cmd := ComposeCommand()
	require.NotEmpty(t, cmd)
	switch cmd[0] {
	case "docker":
		assert.Equal(t, []string{"docker", "compose"}, cmd)
	case "docker-compose":
		assert.Equal(t, []string{"docker-compose"}, cmd)
	default:
		t.Fatalf("unexpected compose command: %v", cmd)
	}
}
