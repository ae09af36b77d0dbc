package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeIdentityEnvOverride(t *testing.T) {
	t.Setenv(envProduct, "Frost")

	identity, err := probeIdentity(context.Background(), "/nonexistent/probe")
	require.NoError(t, err)
	assert.Equal(t, "frost", identity)
}

func TestProbeIdentityMissingUtility(t *testing.T) {
	t.Setenv(envProduct, "")

	_, err := probeIdentity(context.Background(), "/nonexistent/probe")
	require.ErrorIs(t, err, ErrUnknownDevice)
}

func TestProbeRevisionEnvOverride(t *testing.T) {
	t.Setenv(envModelNumber, "7")

	assert.Equal(t, 7, probeRevision("/nonexistent/version"))
}

func TestProbeRevisionFromVersionFile(t *testing.T) {
	t.Setenv(envModelNumber, "")

	path := filepath.Join(t.TempDir(), "version")
	require.NoError(t, os.WriteFile(path, []byte("N123456789,4.1.15,12.3.4.5,local,local,7\n"), 0o600))

	assert.Equal(t, 7, probeRevision(path))
}

func TestProbeRevisionDegradesToZero(t *testing.T) {
	t.Setenv(envModelNumber, "")

	path := filepath.Join(t.TempDir(), "version")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0o600))

	assert.Equal(t, 0, probeRevision(path))
	assert.Equal(t, 0, probeRevision("/nonexistent/version"))
}
