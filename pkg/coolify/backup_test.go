package coolify

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC)
	got := BackupPath("/opt/coolify", at)
	assert.Equal(t, "/opt/coolify_backup_20260825153000", got)

	// The suffix is always exactly 14 digits.
	assert.Regexp(t, regexp.MustCompile(`_backup_\d{14}$`), BackupPath("/srv/app", time.Now()))
}

func TestBackupExistingDir(t *testing.T) {
	rc := ctl_io.NewContext(context.Background(), "test")

	t.Run("missing dir is a no-op", func(t *testing.T) {
		backup, err := BackupExistingDir(rc, filepath.Join(t.TempDir(), "never-created"))
		require.NoError(t, err)
		assert.Empty(t, backup)
	})

	t.Run("existing dir is renamed aside", func(t *testing.T) {
		parent := t.TempDir()
		installDir := filepath.Join(parent, "coolify")
		require.NoError(t, os.MkdirAll(installDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(installDir, "docker-compose.yml"), []byte("services: {}\n"), 0o600))

		backup, err := BackupExistingDir(rc, installDir)
		require.NoError(t, err)
		require.NotEmpty(t, backup)
		assert.Regexp(t, regexp.MustCompile(`coolify_backup_\d{14}$`), backup)

		// The original path is gone and prior contents survive under the backup.
		_, err = os.Stat(installDir)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(backup, "docker-compose.yml"))
		assert.NoError(t, err)
	})

	t.Run("path that is a file is rejected", func(t *testing.T) {
		parent := t.TempDir()
		notADir := filepath.Join(parent, "coolify")
		require.NoError(t, os.WriteFile(notADir, []byte("stale"), 0o644))

		_, err := BackupExistingDir(rc, notADir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}
