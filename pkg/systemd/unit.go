// pkg/systemd/unit.go

package systemd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// WriteUnit writes a systemd unit file, backing up any existing file
// first, and reloads the daemon so systemd picks it up.
func WriteUnit(rc *ctl_io.RuntimeContext, unitPath, content string) error {
	log := otelzap.Ctx(rc.Ctx)

	// Backup existing unit file before overwrite so custom edits survive.
	if _, err := os.Stat(unitPath); err == nil {
		backupPath := fmt.Sprintf("%s.backup.%d", unitPath, time.Now().Unix())
		log.Info("Backing up existing systemd unit file",
			zap.String("original", unitPath),
			zap.String("backup", backupPath))

		if err := copyFile(unitPath, backupPath); err != nil {
			// Non-fatal - continue with overwrite
			log.Warn("Failed to backup systemd unit file, continuing anyway",
				zap.Error(err))
		}
	}

	if err := os.WriteFile(unitPath, []byte(content), shared.FilePermStandard); err != nil {
		return fmt.Errorf("failed to write systemd unit: %w", err)
	}

	if err := DaemonReload(rc); err != nil {
		return fmt.Errorf("failed to reload systemd: %w", err)
	}

	// EVALUATE - Verify the unit file landed with expected permissions
	info, err := os.Stat(unitPath)
	if err != nil {
		return fmt.Errorf("failed to verify unit file: %w", err)
	}
	if info.Mode().Perm() != shared.FilePermStandard {
		log.Warn("Unit file permissions not as expected",
			zap.String("expected", shared.FilePermStandard.String()),
			zap.String("actual", info.Mode().Perm().String()))
	}

	log.Info("Systemd unit written", zap.String("path", unitPath))
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, in)
	return err
}
