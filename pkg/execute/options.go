// pkg/execute/options.go

package execute

import (
	"time"

	"go.uber.org/zap"
)

// Options controls a single external command execution.
type Options struct {
	Command string
	Args    []string
	Dir     string

	// Capture returns combined output from Run instead of discarding it.
	Capture bool

	// Shell requests shell interpretation; always rejected, kept so call
	// sites that ask for it get an explicit error rather than quiet
	// mis-parsing.
	Shell bool

	DryRun  bool
	Retries int
	Delay   time.Duration

	// Timeout bounds the whole execution; zero means the 3 minute default.
	Timeout time.Duration

	Logger *zap.Logger
}

// DefaultLogger, when set, receives logs for executions whose Options
// carry no logger of their own.
var DefaultLogger *zap.Logger

// DefaultDryRun forces dry-run mode process-wide; used by tests.
var DefaultDryRun bool
