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

// Package power manages frontlight and battery state behind a cached,
// capability-gated API. All mutation goes through Controller methods;
// hardware is written only on actual state change.
package power

import (
	"math"
	"time"

	"github.com/papyrus-labs/papyrus/pkg/eventloop"
	"github.com/papyrus-labs/papyrus/pkg/hal"
	"github.com/papyrus-labs/papyrus/pkg/logger"
	"github.com/papyrus-labs/papyrus/pkg/models"
	"github.com/papyrus-labs/papyrus/pkg/profile"
)

// capacityCacheTTL bounds how often battery telemetry files are polled.
const capacityCacheTTL = 60 * time.Second

// Controller owns frontlight and battery-cache state for the process
// lifetime. Single-threaded access: all calls arrive on the event loop.
type Controller struct {
	logger  logger.Logger
	desc    *profile.CapabilityDescriptor
	backend hal.Backend
	sched   eventloop.Scheduler

	now func() time.Time

	intensity int // native scale, [IntensityMin, IntensityMax]
	warmth    int // public scale, [0, 100]

	capacity   int
	capacityAt time.Time

	auxCapacity   int
	auxCapacityAt time.Time
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock injects a time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController builds a Controller against a resolved descriptor. The
// frontlight starts at the minimum intensity (off).
func NewController(desc *profile.CapabilityDescriptor, backend hal.Backend, sched eventloop.Scheduler, log logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		logger:    log,
		desc:      desc,
		backend:   backend,
		sched:     sched,
		now:       time.Now,
		intensity: desc.IntensityMin,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Intensity returns the cached frontlight intensity.
func (c *Controller) Intensity() int { return c.intensity }

// Warmth returns the cached warmth on the public [0,100] scale.
func (c *Controller) Warmth() int { return c.warmth }

// FrontlightOn reports whether the light is on. Derived: on iff intensity is
// above the minimum.
func (c *Controller) FrontlightOn() bool { return c.intensity > c.desc.IntensityMin }

// SetIntensity clamps v to the device bounds and writes it through. Returns
// whether the value changed; unchanged values touch no hardware.
func (c *Controller) SetIntensity(v int) (bool, error) {
	if !c.desc.HasFrontlight {
		return false, nil
	}

	v = clamp(v, c.desc.IntensityMin, c.desc.IntensityMax)
	if v == c.intensity {
		return false, nil
	}

	if err := c.backend.WriteFrontlight(v, c.toNativeWarmth(c.warmth)); err != nil {
		c.logger.Error().Err(err).Int("intensity", v).Msg("Frontlight write failed")
		return false, err
	}

	c.intensity = v
	c.sched.Broadcast(models.EventFrontlightChanged)

	return true, nil
}

// SetWarmth takes the public [0,100] scale regardless of the native hardware
// range. No-op without the natural-light channel.
func (c *Controller) SetWarmth(v int) (bool, error) {
	if !c.desc.HasNaturalLight {
		return false, nil
	}

	v = clamp(v, 0, 100)
	if v == c.warmth {
		return false, nil
	}

	if err := c.backend.WriteFrontlight(c.intensity, c.toNativeWarmth(v)); err != nil {
		c.logger.Error().Err(err).Int("warmth", v).Msg("Warmth write failed")
		return false, err
	}

	c.warmth = v
	c.sched.Broadcast(models.EventFrontlightChanged)

	return true, nil
}

// ToggleFrontlight turns the light off if on. Turning on at the minimum
// intensity is a no-op returning false: there is no remembered non-minimum
// value to restore to, so guessing a default is worse than failing.
func (c *Controller) ToggleFrontlight() bool {
	if !c.desc.HasFrontlight {
		return false
	}

	if c.FrontlightOn() {
		changed, err := c.SetIntensity(c.desc.IntensityMin)
		return changed && err == nil
	}

	return false
}

// Capacity returns the battery charge percentage, re-reading hardware only
// when the cache has aged out.
func (c *Controller) Capacity() int {
	if c.now().Sub(c.capacityAt) < capacityCacheTTL {
		return c.capacity
	}

	val, err := c.backend.ReadBatteryCapacity(c.desc.BatteryPath)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Battery read failed, keeping cached value")
	} else {
		c.capacity = val
	}

	c.capacityAt = c.now()

	return c.capacity
}

// AuxCapacity is the power-cover variant. A failed read keeps both the old
// value and the old timestamp, so the next call retries immediately instead
// of waiting out a poisoned cache window.
func (c *Controller) AuxCapacity() int {
	if c.desc.AuxBatteryPath == "" {
		return 0
	}

	if c.now().Sub(c.auxCapacityAt) < capacityCacheTTL {
		return c.auxCapacity
	}

	val, err := c.backend.ReadBatteryCapacity(c.desc.AuxBatteryPath)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Aux battery read failed, keeping cached value")
		return c.auxCapacity
	}

	c.auxCapacity = val
	c.auxCapacityAt = c.now()

	return c.auxCapacity
}

// InvalidateCapacityCache forces the next capacity queries to hit hardware.
// Called after events known to change charge out-of-band, e.g. resume.
func (c *Controller) InvalidateCapacityCache() {
	c.capacityAt = time.Time{}
	c.auxCapacityAt = time.Time{}
}

// toNativeWarmth converts the public [0,100] scale to the hardware range.
func (c *Controller) toNativeWarmth(public int) int {
	return int(math.Round(float64(public) / (100.0 / float64(c.desc.WarmthMax))))
}

// fromNativeWarmth is the read-back inverse of toNativeWarmth.
func (c *Controller) fromNativeWarmth(native int) int {
	return int(math.Round(float64(native) * (100.0 / float64(c.desc.WarmthMax))))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
