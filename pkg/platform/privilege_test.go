package platform

import (
	"context"
	"os"
	"testing"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_err"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRoot(t *testing.T) {
	rc := ctl_io.NewContext(context.Background(), "test")
	err := RequireRoot(rc)

	if os.Geteuid() == 0 {
		assert.NoError(t, err)
		assert.True(t, IsRoot())
		return
	}

	require.Error(t, err)
	assert.True(t, ctl_err.IsExpectedUserError(err))
	assert.Contains(t, err.Error(), "must be run as root")
	assert.False(t, IsRoot())
}
