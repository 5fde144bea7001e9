// pkg/ctl_err/ctl_err.go
//
// Error classification: expected user errors (bad input, preconditions the
// operator can fix) versus system errors (bugs, broken hosts). User errors
// are reported without stack traces; system errors carry full context.

package ctl_err

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// UserError marks a failure the operator caused and can fix themselves,
// e.g. running without root or reinstalling without --force.
type UserError struct {
	Err error
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates an expected user-facing error.
func NewUserError(format string, args ...interface{}) error {
	return &UserError{Err: fmt.Errorf(format, args...)}
}

// NewExpectedError wraps err as an expected user error. Returns nil for a
// nil err. The context is accepted for call-site symmetry with the rest of
// the codebase; classification needs nothing from it.
func NewExpectedError(_ context.Context, err error) error {
	if err == nil {
		return nil
	}
	return &UserError{Err: err}
}

// IsExpectedUserError reports whether err (or anything it wraps) is a
// user error.
func IsExpectedUserError(err error) bool {
	if err == nil {
		return false
	}
	var ue *UserError
	return errors.As(err, &ue)
}

// GetExitCode maps an error onto a process exit code: 0 for nil, 1 for
// everything else. User errors still exit 1 so scripts can detect failed
// preconditions, matching the installer's documented behavior.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// WrapSystem attaches a stack trace unless err is an expected user error.
func WrapSystem(err error) error {
	if err == nil || IsExpectedUserError(err) {
		return err
	}
	return cerr.WithStack(err)
}

// errorKeywords are scanned case-insensitively when summarizing command
// output.
var errorKeywords = []string{"error", "failed", "panic", "fatal", "timeout", "cannot"}

// ExtractSummary condenses multi-line command output into a short summary
// of its most error-like lines, capped at maxCandidates lines.
func ExtractSummary(_ context.Context, output string, maxCandidates int) string {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return "No output provided."
	}

	var candidates []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range errorKeywords {
			if strings.Contains(lower, kw) {
				candidates = append(candidates, line)
				break
			}
		}
		if len(candidates) >= maxCandidates {
			break
		}
	}

	if len(candidates) == 0 {
		// Nothing error-like; fall back to the first line.
		first := strings.SplitN(trimmed, "\n", 2)[0]
		return strings.TrimSpace(first)
	}
	return strings.Join(candidates, " - ")
}
