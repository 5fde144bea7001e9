// pkg/shared/sync.go

package shared

import (
	"strings"

	"go.uber.org/zap"
)

// SafeSync flushes the global zap logger, swallowing the EINVAL that
// zap.Sync returns when stdout is a terminal.
func SafeSync() {
	if err := zap.L().Sync(); err != nil {
		if strings.Contains(err.Error(), "invalid argument") ||
			strings.Contains(err.Error(), "inappropriate ioctl") {
			return
		}
		zap.L().Warn("Failed to flush logs", zap.Error(err))
	}
}
