package wakeup

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/papyrus-labs/papyrus/pkg/hal"
	"github.com/papyrus-labs/papyrus/pkg/logger"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newManager(t *testing.T) (*Manager, *hal.MockBackend, *fakeClock) {
	t.Helper()

	backend := hal.NewMockBackend(gomock.NewController(t))
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}

	return NewManager(backend, clock, logger.NewTestLogger()), backend, clock
}

func TestAddTaskArmsEarliest(t *testing.T) {
	t.Parallel()

	m, backend, clock := newManager(t)

	backend.EXPECT().SetRTCAlarm(clock.now.Add(time.Hour)).Return(nil)

	_, err := m.AddTask(time.Hour, func() {})
	require.NoError(t, err)
	assert.True(t, m.AlarmScheduled())

	// A sooner task re-arms; a later one leaves the earliest armed.
	backend.EXPECT().SetRTCAlarm(clock.now.Add(10 * time.Minute)).Return(nil)

	_, err = m.AddTask(10*time.Minute, func() {})
	require.NoError(t, err)

	backend.EXPECT().SetRTCAlarm(clock.now.Add(10 * time.Minute)).Return(nil)

	_, err = m.AddTask(2*time.Hour, func() {})
	require.NoError(t, err)
}

func TestRemoveTaskDisarmsWhenEmpty(t *testing.T) {
	t.Parallel()

	m, backend, clock := newManager(t)

	backend.EXPECT().SetRTCAlarm(clock.now.Add(time.Hour)).Return(nil)

	token, err := m.AddTask(time.Hour, func() {})
	require.NoError(t, err)

	backend.EXPECT().ClearRTCAlarm().Return(nil)

	require.NoError(t, m.RemoveTask(token))
	assert.False(t, m.AlarmScheduled())
}

func TestRemoveUnknownTask(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t)

	err := m.RemoveTask(uuid.New())
	require.ErrorIs(t, err, ErrNoSuchTask)
}

func TestAddTaskRTCFailureRollsBack(t *testing.T) {
	t.Parallel()

	m, backend, _ := newManager(t)

	backend.EXPECT().SetRTCAlarm(gomock.Any()).Return(hal.ErrHardwareWrite)

	_, err := m.AddTask(time.Hour, func() {})
	require.ErrorIs(t, err, hal.ErrHardwareWrite)
	assert.False(t, m.AlarmScheduled())

	// Nothing left dangling: a later add starts clean.
	backend.EXPECT().SetRTCAlarm(gomock.Any()).Return(nil)

	_, err = m.AddTask(time.Hour, func() {})
	require.NoError(t, err)
}

func TestValidateWakeupByProximity(t *testing.T) {
	t.Parallel()

	m, backend, clock := newManager(t)

	fire := clock.now.Add(time.Hour)

	backend.EXPECT().SetRTCAlarm(fire).Return(nil)
	require.NoError(t, m.ScheduleAlarm(fire))

	// Nowhere near the fire time.
	assert.False(t, m.ValidateWakeupByProximity())

	// Within tolerance, both early and late.
	clock.now = fire.Add(-10 * time.Second)
	assert.True(t, m.ValidateWakeupByProximity())

	clock.now = fire.Add(25 * time.Second)
	assert.True(t, m.ValidateWakeupByProximity())

	clock.now = fire.Add(31 * time.Second)
	assert.False(t, m.ValidateWakeupByProximity())
}

func TestValidateWithoutArmedAlarm(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t)

	assert.False(t, m.ValidateWakeupByProximity())
}

func TestFireDueRunsActionsAndRearms(t *testing.T) {
	t.Parallel()

	m, backend, clock := newManager(t)

	var ran []string

	backend.EXPECT().SetRTCAlarm(gomock.Any()).Return(nil).Times(2)

	_, err := m.AddTask(10*time.Minute, func() { ran = append(ran, "soon") })
	require.NoError(t, err)

	_, err = m.AddTask(2*time.Hour, func() { ran = append(ran, "later") })
	require.NoError(t, err)

	clock.now = clock.now.Add(10 * time.Minute)

	// The later task must stay pending and the alarm re-armed for it.
	backend.EXPECT().SetRTCAlarm(gomock.Any()).Return(nil)

	assert.Equal(t, 1, m.FireDue())
	assert.Equal(t, []string{"soon"}, ran)
	assert.True(t, m.AlarmScheduled())
}

func TestUnsetAlarmClearsHardwareFirst(t *testing.T) {
	t.Parallel()

	m, backend, clock := newManager(t)

	backend.EXPECT().SetRTCAlarm(gomock.Any()).Return(nil)
	require.NoError(t, m.ScheduleAlarm(clock.now.Add(time.Hour)))

	// A failed RTC clear leaves the manager still reporting armed, so the
	// caller knows the hardware alarm is live.
	backend.EXPECT().ClearRTCAlarm().Return(hal.ErrHardwareWrite)
	require.ErrorIs(t, m.UnsetAlarm(), hal.ErrHardwareWrite)
	assert.True(t, m.AlarmScheduled())

	backend.EXPECT().ClearRTCAlarm().Return(nil)
	require.NoError(t, m.UnsetAlarm())
	assert.False(t, m.AlarmScheduled())
}
