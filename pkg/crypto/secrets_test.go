package crypto

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alphanumericRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func TestGenerateAppID(t *testing.T) {
	t.Parallel()

	id, err := GenerateAppID()
	require.NoError(t, err)
	assert.Len(t, id, AppIDLength)
	assert.Regexp(t, alphanumericRe, id)
}

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()

	key, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.Len(t, key, SecretKeyLength)
	assert.Regexp(t, alphanumericRe, key)
}

func TestGeneratedSecretsDiffer(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 32; i++ {
		key, err := GenerateSecretKey()
		require.NoError(t, err)
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate secret generated: %s", key)
		}
		seen[key] = struct{}{}
	}
}

func TestGenerateAlphanumericRejectsBadLength(t *testing.T) {
	t.Parallel()

	_, err := generateAlphanumeric(0)
	assert.Error(t, err)
	_, err = generateAlphanumeric(-5)
	assert.Error(t, err)
}

func TestRedact(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(empty)", Redact(""))
	assert.Equal(t, "********", Redact("super-secret-value"))
	assert.NotContains(t, Redact("super-secret-value"), "super")
}
