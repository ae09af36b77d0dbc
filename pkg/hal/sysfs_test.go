package hal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrus/pkg/logger"
	"github.com/papyrus-labs/papyrus/pkg/profile"
)

func testDescriptor(t *testing.T, codename string) *profile.CapabilityDescriptor {
	t.Helper()

	desc, err := profile.NewRegistry(logger.NewTestLogger()).Resolve(codename, 0)
	require.NoError(t, err)

	return desc
}

func scratchTree(t *testing.T, desc *profile.CapabilityDescriptor) string {
	t.Helper()

	root := t.TempDir()

	for _, p := range []string{
		powerStatePath,
		powerStateExtendedPath,
		rtcWakealarmPath,
		desc.BatteryPath,
		filepath.Join(filepath.Dir(desc.BatteryPath), "status"),
		ntxFrontlightPath,
		ntxChargingLEDPath,
		desc.NaturalLightMixerPath,
	} {
		if p == "" {
			continue
		}

		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(""), 0o644))
	}

	return root
}

func readBack(t *testing.T, root, path string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, path))
	require.NoError(t, err)

	return string(data)
}

func TestNewSelectsPlatformFamily(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()

	_, isNTX := New(testDescriptor(t, "frost"), log).(*ntxBackend)
	assert.True(t, isNTX)

	_, isSunxi := New(testDescriptor(t, "goldfinch"), log).(*sunxiBackend)
	assert.True(t, isSunxi)
}

func TestNTXFrontlightWritesBothChannels(t *testing.T) {
	t.Parallel()

	desc := testDescriptor(t, "frost")
	root := scratchTree(t, desc)
	b := New(desc, logger.NewTestLogger(), WithRoot(root))

	require.NoError(t, b.WriteFrontlight(42, 5))

	assert.Equal(t, "42", readBack(t, root, ntxFrontlightPath))
	assert.Equal(t, "5", readBack(t, root, desc.NaturalLightMixerPath))
}

func TestPowerStateTokens(t *testing.T) {
	t.Parallel()

	desc := testDescriptor(t, "frost")
	root := scratchTree(t, desc)
	b := New(desc, logger.NewTestLogger(), WithRoot(root))

	require.NoError(t, b.WritePowerState(PowerStateMem))
	assert.Equal(t, "mem", readBack(t, root, powerStatePath))

	require.NoError(t, b.WriteStateExtended("1"))
	assert.Equal(t, "1", readBack(t, root, powerStateExtendedPath))
}

func TestSupportedPowerStates(t *testing.T) {
	t.Parallel()

	desc := testDescriptor(t, "frost")
	root := scratchTree(t, desc)
	b := New(desc, logger.NewTestLogger(), WithRoot(root))

	full := filepath.Join(root, powerStatePath)
	require.NoError(t, os.WriteFile(full, []byte("freeze standby mem\n"), 0o644))

	states, err := b.SupportedPowerStates()
	require.NoError(t, err)
	assert.Equal(t, []string{"freeze", "standby", "mem"}, states)
}

func TestReadBatteryCapacity(t *testing.T) {
	t.Parallel()

	desc := testDescriptor(t, "frost")
	root := scratchTree(t, desc)
	b := New(desc, logger.NewTestLogger(), WithRoot(root))

	full := filepath.Join(root, desc.BatteryPath)
	require.NoError(t, os.WriteFile(full, []byte("87\n"), 0o644))

	got, err := b.ReadBatteryCapacity(desc.BatteryPath)
	require.NoError(t, err)
	assert.Equal(t, 87, got)

	_, err = b.ReadBatteryCapacity("/nonexistent/capacity")
	require.ErrorIs(t, err, ErrHardwareRead)
}

func TestIsCharging(t *testing.T) {
	t.Parallel()

	desc := testDescriptor(t, "frost")
	root := scratchTree(t, desc)
	b := New(desc, logger.NewTestLogger(), WithRoot(root))

	statusPath := filepath.Join(root, filepath.Dir(desc.BatteryPath), "status")
	require.NoError(t, os.WriteFile(statusPath, []byte("Charging\n"), 0o644))

	charging, err := b.IsCharging()
	require.NoError(t, err)
	assert.True(t, charging)

	require.NoError(t, os.WriteFile(statusPath, []byte("Discharging\n"), 0o644))

	charging, err = b.IsCharging()
	require.NoError(t, err)
	assert.False(t, charging)
}

func TestRTCAlarmRoundTrip(t *testing.T) {
	t.Parallel()

	desc := testDescriptor(t, "frost")
	root := scratchTree(t, desc)
	b := New(desc, logger.NewTestLogger(), WithRoot(root))

	fire := time.Unix(1_800_000_000, 0)
	require.NoError(t, b.SetRTCAlarm(fire))
	assert.Equal(t, "1800000000", readBack(t, root, rtcWakealarmPath))

	require.NoError(t, b.ClearRTCAlarm())
	assert.Equal(t, "0", readBack(t, root, rtcWakealarmPath))
}

func TestWriteFailureWrapsSentinel(t *testing.T) {
	t.Parallel()

	desc := testDescriptor(t, "frost")
	// Empty scratch tree: every path is missing its parent directory.
	b := New(desc, logger.NewTestLogger(), WithRoot(t.TempDir()))

	err := b.WriteStateExtended("1")
	require.ErrorIs(t, err, ErrHardwareWrite)
}
