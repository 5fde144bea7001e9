// pkg/coolify/backup.go

package coolify

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// BackupExistingDir renames an existing install directory aside with a
// 14-digit timestamp suffix, never merging or deleting prior state. It
// returns the backup path, or "" when the directory did not exist.
func BackupExistingDir(rc *ctl_io.RuntimeContext, installDir string) (string, error) {
	log := otelzap.Ctx(rc.Ctx)

	info, err := os.Stat(installDir)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", cerr.Wrapf(err, "stat %s", installDir)
	}
	if !info.IsDir() {
		return "", cerr.Newf("%s exists but is not a directory", installDir)
	}

	backupPath := BackupPath(installDir, time.Now())
	log.Info("Existing install directory found, renaming aside",
		zap.String("dir", installDir),
		zap.String("backup", backupPath))

	if err := os.Rename(installDir, backupPath); err != nil {
		return "", cerr.Wrapf(err, "rename %s aside", installDir)
	}
	return backupPath, nil
}

// BackupPath builds the rename-aside target for an install dir at the
// given time, e.g. /opt/coolify -> /opt/coolify_backup_20260825153000.
func BackupPath(installDir string, at time.Time) string {
	parent := filepath.Dir(installDir)
	base := filepath.Base(installDir)
	return filepath.Join(parent, fmt.Sprintf("%s_backup_%s", base, at.Format(shared.BackupTimestampLayout)))
}
