// pkg/templates/render.go
//
// Centralized template rendering with rate limiting, size limits, and
// timeout enforcement.

package templates

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"text/template"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultMaxOutputSize caps rendered output to prevent resource
	// exhaustion from a runaway template.
	DefaultMaxOutputSize = 1 * 1024 * 1024 // 1MB

	// DefaultTemplateTimeout bounds template execution.
	DefaultTemplateTimeout = 30 * time.Second

	// RateLimitBurst and RateLimitPerMinute bound template operations.
	RateLimitBurst     = 5
	RateLimitPerMinute = 10
)

var (
	globalRateLimiter = rate.NewLimiter(rate.Every(time.Minute/RateLimitPerMinute), RateLimitBurst)
	rateLimiterMu     sync.Mutex
)

// Renderer executes parsed templates under the global limits.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a template renderer. A nil logger falls back to the
// global zap logger.
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.L()
	}
	return &Renderer{
		logger: logger.Named("template-renderer"),
	}
}

// Render executes tmpl with data and returns the output, enforcing rate
// limit, timeout, and output size cap.
func (r *Renderer) Render(ctx context.Context, tmpl *template.Template, data interface{}) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rateLimiterMu.Lock()
	allowed := globalRateLimiter.Allow()
	rateLimiterMu.Unlock()
	if !allowed {
		r.logger.Warn("Template rendering rate limit exceeded",
			zap.String("template", tmpl.Name()))
		return "", fmt.Errorf("rate limit exceeded for template operations (max %d/min)", RateLimitPerMinute)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTemplateTimeout)
	defer cancel()

	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		err := tmpl.Execute(&buf, data)
		done <- result{out: buf.String(), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("template %q execution timed out", tmpl.Name())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("execute template %q: %w", tmpl.Name(), res.err)
		}
		if len(res.out) > DefaultMaxOutputSize {
			return "", fmt.Errorf("template %q output exceeds %d bytes", tmpl.Name(), DefaultMaxOutputSize)
		}
		return res.out, nil
	}
}
