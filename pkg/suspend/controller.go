/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package suspend orchestrates the suspend/standby/resume lifecycle. The
// sleep-entry write genuinely blocks the control thread until hardware
// resume; on these boards measuring elapsed time around that write is the
// only way to detect that time passed during sleep.
package suspend

import (
	"errors"
	"fmt"
	"time"

	"github.com/papyrus-labs/papyrus/pkg/eventloop"
	"github.com/papyrus-labs/papyrus/pkg/hal"
	"github.com/papyrus-labs/papyrus/pkg/logger"
	"github.com/papyrus-labs/papyrus/pkg/models"
	"github.com/papyrus-labs/papyrus/pkg/power"
	"github.com/papyrus-labs/papyrus/pkg/profile"
	"github.com/papyrus-labs/papyrus/pkg/wakeup"
)

const (
	// suspendSettleDelay lets subsystems finish flagging before sleep entry.
	suspendSettleDelay = 2 * time.Second

	// unexpectedWakeupGuard is how long after a hardware resume the
	// controller waits for a real resume() before treating the wakeup as
	// spurious.
	unexpectedWakeupGuard = 15 * time.Second

	// resuspendGrace gives an alarm action's UI teardown time to finish
	// before the device goes back to sleep.
	resuspendGrace = 5 * time.Second

	// unexpectedWakeupCeiling caps re-suspend retries. A count past this
	// usually means suspend itself is failing; retrying forever wastes
	// battery and can mask a hardware fault.
	unexpectedWakeupCeiling = 20
)

var (
	errNotAwake             = errors.New("suspend requires the awake state")
	errStandbyUnsupported   = errors.New("standby not supported on this device")
	errStandbyWhileCharging = errors.New("standby refused while charging")
)

// Controller drives the suspend/standby/resume state machine. All calls
// arrive on the event loop thread; the blocking hardware writes freeze that
// thread for the sleep duration, which is the intended effect.
type Controller struct {
	logger  logger.Logger
	desc    *profile.CapabilityDescriptor
	backend hal.Backend
	power   *power.Controller
	wakeup  *wakeup.Manager
	sched   eventloop.Scheduler
	clock   wakeup.Clock

	// flushFS flushes filesystem state before sleep entry.
	flushFS func()

	// settle pauses the control thread during the quiesce sequence.
	settle      func(time.Duration)
	settleDelay time.Duration

	state             State
	lastCycle         cycle
	unexpectedWakeups int

	guardID    eventloop.TaskID
	guardArmed bool

	// ledOn is the desired charging-LED state. Hardware cannot be queried
	// for it, so it is re-asserted on every resume.
	ledOn bool

	standbyCapable bool
	standbyAccum   time.Duration
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock injects a time source, for tests.
func WithClock(clock wakeup.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithSettle replaces the quiesce settle pause, for tests.
func WithSettle(settle func(time.Duration)) Option {
	return func(c *Controller) { c.settle = settle }
}

// WithSettleDelay overrides the quiesce settle duration. Non-positive values
// keep the default.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.settleDelay = d
		}
	}
}

// WithFlushFS replaces the filesystem flush, for tests.
func WithFlushFS(flush func()) Option {
	return func(c *Controller) { c.flushFS = flush }
}

// NewController builds the controller and verifies standby capability once
// by probing the OS-exposed list of supported power states. A probe failure
// degrades to "standby absent".
func NewController(
	desc *profile.CapabilityDescriptor,
	backend hal.Backend,
	pw *power.Controller,
	wk *wakeup.Manager,
	sched eventloop.Scheduler,
	log logger.Logger,
	opts ...Option,
) *Controller {
	c := &Controller{
		logger:      log,
		desc:        desc,
		backend:     backend,
		power:       pw,
		wakeup:      wk,
		sched:       sched,
		clock:       wakeup.SystemClock(),
		flushFS:     flushFilesystems,
		settle:      time.Sleep,
		settleDelay: suspendSettleDelay,
		state:       StateAwake,
	}

	for _, opt := range opts {
		opt(c)
	}

	if desc.CanStandby {
		states, err := backend.SupportedPowerStates()
		if err != nil {
			log.Warn().Err(err).Msg("Power-state probe failed, disabling standby")
		} else {
			for _, s := range states {
				if s == hal.PowerStateStandby {
					c.standbyCapable = true
					break
				}
			}
		}
	}

	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// UnexpectedWakeups returns the process-wide spurious wakeup count.
func (c *Controller) UnexpectedWakeups() int { return c.unexpectedWakeups }

// StandbyAccumulated returns total measured standby time.
func (c *Controller) StandbyAccumulated() time.Duration { return c.standbyAccum }

// Suspend runs the quiesce sequence and enters sleep. The power-state write
// blocks until hardware resume; when this method returns without error the
// device has already woken and the unexpected-wakeup guard is armed.
func (c *Controller) Suspend(reason string) error {
	if c.state != StateAwake {
		return fmt.Errorf("%w: currently %s", errNotAwake, c.state)
	}

	c.state = StateSuspending
	c.lastCycle = cycle{reason: reason}

	c.logger.Info().Str("reason", reason).Msg("Suspending")

	if err := c.backend.WriteStateExtended("1"); err != nil {
		c.state = StateAwake
		return err
	}

	c.settle(c.settleDelay)

	c.flushFS()

	c.sched.Broadcast(models.EventSuspended)

	c.lastCycle.enteredAt = c.clock.Now().Unix()

	entry := c.clock.Now()

	if err := c.backend.WritePowerState(hal.PowerStateMem); err != nil {
		// Never leave the subsystem flag set on an aborted suspend.
		if uerr := c.backend.WriteStateExtended("0"); uerr != nil {
			c.logger.Error().Err(uerr).Msg("Failed to unflag subsystems after aborted suspend")
		}

		c.state = StateAwake

		return err
	}

	// The write returned: hardware has resumed.
	elapsed := c.clock.Now().Sub(entry)

	c.state = StateResuming
	c.unexpectedWakeups++

	c.guardID = c.sched.ScheduleAfter(unexpectedWakeupGuard, c.checkUnexpectedWakeup)
	c.guardArmed = true

	c.logger.Info().
		Dur("slept_for", elapsed).
		Int("wakeup_count", c.unexpectedWakeups).
		Msg("Hardware resumed, guard armed")

	return nil
}

// Resume completes an expected wakeup triggered by a real user or cover
// signal. Guard cancellation happens before anything else so a stale guard
// can never fire into a fresh suspend cycle.
func (c *Controller) Resume() error {
	if c.guardArmed {
		c.sched.Unschedule(c.guardID)
		c.guardArmed = false
	}

	c.unexpectedWakeups = 0

	if err := c.backend.WriteStateExtended("0"); err != nil {
		c.logger.Error().Err(err).Msg("Failed to unflag subsystems on resume")
	}

	if c.desc.Platform == profile.PlatformNTX {
		// Touch controllers on these boards come back deaf after mem sleep.
		if err := c.backend.KickTouchController(); err != nil {
			c.logger.Warn().Err(err).Msg("Touch controller kick failed")
		}
	}

	if c.desc.HasChargingLED {
		if err := c.backend.SetChargingLED(c.ledOn); err != nil {
			c.logger.Warn().Err(err).Msg("Charging LED restore failed")
		}
	}

	// Charge state moved while we slept.
	c.power.InvalidateCapacityCache()

	c.state = StateAwake

	c.sched.Broadcast(models.EventResumed)

	return nil
}

// SetChargingLED records the desired LED state and applies it. The desired
// state survives sleep cycles; hardware state does not.
func (c *Controller) SetChargingLED(on bool) error {
	if !c.desc.HasChargingLED {
		return nil
	}

	c.ledOn = on

	return c.backend.SetChargingLED(on)
}

// checkUnexpectedWakeup is the guard task. It fires only when no resume()
// arrived after a hardware wakeup.
func (c *Controller) checkUnexpectedWakeup() {
	c.guardArmed = false

	if c.wakeup.AlarmScheduled() && c.wakeup.ValidateWakeupByProximity() {
		// This is the scheduled wakeup: run its action and go back to sleep
		// once any action-triggered teardown has finished.
		c.logger.Info().Msg("Wakeup matches scheduled alarm")

		c.wakeup.FireDue()

		c.state = StateAwake
		c.sched.ScheduleAfter(resuspendGrace, func() {
			if err := c.Suspend("scheduled wakeup complete"); err != nil {
				c.logger.Error().Err(err).Msg("Re-suspend after scheduled wakeup failed")
			}
		})

		return
	}

	if c.unexpectedWakeups == 0 || c.unexpectedWakeups > unexpectedWakeupCeiling {
		c.logger.Warn().
			Int("wakeup_count", c.unexpectedWakeups).
			Str("cycle_reason", c.lastCycle.reason).
			Msg("Giving up on re-suspend, delegating to policy owner")

		c.state = StateAwake
		c.sched.Broadcast(models.EventWakeupLimit)

		return
	}

	c.logger.Info().
		Int("wakeup_count", c.unexpectedWakeups).
		Msg("Unexpected wakeup, re-suspending")

	c.state = StateAwake

	if err := c.Suspend("unexpected wakeup retry"); err != nil {
		c.logger.Error().Err(err).Msg("Re-suspend failed")
	}
}

// Standby enters the shallower sleep mode that keeps touch input live. Only
// available when the startup probe confirmed kernel support; on the
// allwinner family it is additionally refused while charging.
func (c *Controller) Standby(maxDuration time.Duration) error {
	if !c.standbyCapable {
		return errStandbyUnsupported
	}

	if c.state != StateAwake {
		return fmt.Errorf("%w: currently %s", errNotAwake, c.state)
	}

	if c.desc.Platform == profile.PlatformSunxi {
		charging, err := c.backend.IsCharging()
		if err == nil && charging {
			return errStandbyWhileCharging
		}
	}

	token, err := c.wakeup.AddTask(maxDuration, func() {})
	if err != nil {
		return err
	}

	entry := c.clock.Now()

	werr := c.backend.WritePowerState(hal.PowerStateStandby)

	c.standbyAccum += c.clock.Now().Sub(entry)

	if rerr := c.wakeup.RemoveTask(token); rerr != nil {
		c.logger.Error().Err(rerr).Msg("Failed to remove standby wake task")
	}

	if werr != nil {
		return werr
	}

	c.logger.Debug().
		Dur("standby_total", c.standbyAccum).
		Msg("Standby cycle complete")

	return nil
}
