package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrus/pkg/logger"
)

func TestResolveKnownIdentity(t *testing.T) {
	t.Parallel()

	r := NewRegistry(logger.NewTestLogger())

	desc, err := r.Resolve("frost", 0)
	require.NoError(t, err)

	assert.Equal(t, "Forma", desc.Model)
	assert.Equal(t, PlatformNTX, desc.Platform)
	assert.True(t, desc.HasFrontlight)
	assert.True(t, desc.HasNaturalLight)
	assert.True(t, desc.HasMultiCore)
	assert.True(t, desc.CanStandby)
	assert.Equal(t, 300, desc.DisplayDPI)
}

func TestResolveUnknownIdentity(t *testing.T) {
	t.Parallel()

	r := NewRegistry(logger.NewTestLogger())

	_, err := r.Resolve("kindle", 0)
	require.ErrorIs(t, err, ErrUnknownDevice)
}

func TestResolveRevisionDiscriminator(t *testing.T) {
	t.Parallel()

	r := NewRegistry(logger.NewTestLogger())

	early, err := r.Resolve("snow", 0)
	require.NoError(t, err)
	assert.Equal(t, "Aura H2O Edition 2", early.Model)
	assert.False(t, early.HasNaturalLight)
	assert.False(t, early.CanStandby)

	late, err := r.Resolve("snow", 7)
	require.NoError(t, err)
	assert.Equal(t, "Aura H2O Edition 2 r2", late.Model)
	assert.True(t, late.HasNaturalLight)
	assert.True(t, late.CanStandby)

	// Revisions past the refresh still select the refresh leaf.
	later, err := r.Resolve("snow", 9)
	require.NoError(t, err)
	assert.Equal(t, "Aura H2O Edition 2 r2", later.Model)
}

func TestResolveMixerPathImpliesNaturalLight(t *testing.T) {
	t.Parallel()

	r := NewRegistry(logger.NewTestLogger())

	// No variant sets HasNaturalLight directly; it is derived from the
	// mixer path at materialization.
	desc, err := r.Resolve("daylight", 0)
	require.NoError(t, err)
	assert.True(t, desc.HasNaturalLight)
	assert.NotEmpty(t, desc.NaturalLightMixerPath)
}

func TestAllVariantsSatisfyBoundInvariants(t *testing.T) {
	t.Parallel()

	r := NewRegistry(logger.NewTestLogger())

	for codename, leaves := range variants {
		for _, leaf := range leaves {
			desc, err := r.Resolve(codename, leaf.minRevision)
			require.NoError(t, err, "codename %s rev %d", codename, leaf.minRevision)

			assert.Less(t, desc.IntensityMin, desc.IntensityMax, "codename %s", codename)
			assert.Less(t, desc.WarmthMin, desc.WarmthMax, "codename %s", codename)
			assert.NotEmpty(t, desc.BatteryPath, "codename %s", codename)

			if desc.HasNaturalLight {
				assert.NotEmpty(t, desc.NaturalLightMixerPath, "codename %s", codename)
			}
		}
	}
}

func TestDetectUsesProbes(t *testing.T) {
	t.Parallel()

	r := NewRegistry(logger.NewTestLogger())
	r.probeIdentityFn = func(context.Context, string) (string, error) {
		return "nova", nil
	}
	r.probeRevisionFn = func(string) int {
		return 0
	}

	desc, err := r.Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Clara HD", desc.Model)
}

func TestDetectProbeFailureIsFatal(t *testing.T) {
	r := NewRegistry(logger.NewTestLogger())
	r.probeIdentityFn = func(ctx context.Context, utility string) (string, error) {
		return probeIdentity(ctx, "/nonexistent/probe-utility")
	}

	t.Setenv("PRODUCT", "") // make sure the env override cannot mask the failure

	_, err := r.Detect(context.Background())
	require.ErrorIs(t, err, ErrUnknownDevice)
}
