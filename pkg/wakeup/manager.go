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

// Package wakeup owns scheduled RTC-backed wake tasks and decides whether a
// hardware wakeup corresponds to one of them. The device has exactly one
// hardware alarm; software tasks layer on top of it and the alarm is always
// armed for the earliest pending fire time.
package wakeup

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/papyrus-labs/papyrus/pkg/hal"
	"github.com/papyrus-labs/papyrus/pkg/logger"
)

// proximityTolerance bounds how far a hardware wakeup timestamp may drift
// from the armed fire time and still count as the scheduled wakeup. RTCs on
// these boards fire early or late by a few seconds.
const proximityTolerance = 30 * time.Second

// ErrNoSuchTask is returned when removing an unknown task token.
var ErrNoSuchTask = errors.New("no such wake task")

// Task is one pending wake action.
type Task struct {
	Token    uuid.UUID
	FireTime time.Time
	Action   func()
}

// Manager tracks wake tasks and the single hardware alarm. Plain data
// operations on process-local state; only arming and disarming the RTC
// touches hardware.
type Manager struct {
	logger  logger.Logger
	backend hal.Backend
	clock   Clock

	tasks map[uuid.UUID]*Task

	armed       bool
	lastArmedAt time.Time
}

// NewManager creates an empty Manager.
func NewManager(backend hal.Backend, clock Clock, log logger.Logger) *Manager {
	return &Manager{
		logger:  log,
		backend: backend,
		clock:   clock,
		tasks:   make(map[uuid.UUID]*Task),
	}
}

// AddTask schedules action to run after d and re-arms the hardware alarm for
// the earliest pending task. Returns the token used for cancellation.
func (m *Manager) AddTask(d time.Duration, action func()) (uuid.UUID, error) {
	task := &Task{
		Token:    uuid.New(),
		FireTime: m.clock.Now().Add(d),
		Action:   action,
	}

	m.tasks[task.Token] = task

	if err := m.rearm(); err != nil {
		delete(m.tasks, task.Token)
		return uuid.Nil, err
	}

	return task.Token, nil
}

// RemoveTask cancels a pending task. The hardware alarm is always re-armed
// or disarmed to match the remaining tasks, even when the RTC write on the
// previous arm failed: a stale armed alarm would wake the device hours later.
func (m *Manager) RemoveTask(token uuid.UUID) error {
	if _, ok := m.tasks[token]; !ok {
		return ErrNoSuchTask
	}

	delete(m.tasks, token)

	return m.rearm()
}

// ScheduleAlarm arms the hardware alarm directly for fireTime.
func (m *Manager) ScheduleAlarm(fireTime time.Time) error {
	if err := m.backend.SetRTCAlarm(fireTime); err != nil {
		return err
	}

	m.armed = true
	m.lastArmedAt = fireTime

	m.logger.Debug().Time("fire_time", fireTime).Msg("RTC alarm armed")

	return nil
}

// UnsetAlarm disarms the hardware alarm. The RTC write must never be skipped
// on a failure path, so local state is cleared only after it succeeds.
func (m *Manager) UnsetAlarm() error {
	if err := m.backend.ClearRTCAlarm(); err != nil {
		return err
	}

	m.armed = false

	return nil
}

// AlarmScheduled reports whether the hardware alarm is armed.
func (m *Manager) AlarmScheduled() bool { return m.armed }

// ValidateWakeupByProximity reports whether the current time falls within
// tolerance of the most recently armed fire time. Guards against RTCs that
// fire early or late and against wakeups unrelated to any alarm.
func (m *Manager) ValidateWakeupByProximity() bool {
	if m.lastArmedAt.IsZero() {
		return false
	}

	drift := m.clock.Now().Sub(m.lastArmedAt)
	if drift < 0 {
		drift = -drift
	}

	return drift <= proximityTolerance
}

// FireDue runs and removes every task whose fire time has arrived (within
// the proximity tolerance), then re-arms for whatever remains. Returns how
// many actions ran.
func (m *Manager) FireDue() int {
	now := m.clock.Now()

	fired := 0

	for token, task := range m.tasks {
		if task.FireTime.After(now.Add(proximityTolerance)) {
			continue
		}

		delete(m.tasks, token)

		task.Action()

		fired++
	}

	if err := m.rearm(); err != nil {
		m.logger.Error().Err(err).Msg("Failed to re-arm alarm after firing tasks")
	}

	return fired
}

// rearm points the hardware alarm at the earliest pending task, or disarms
// it when none remain.
func (m *Manager) rearm() error {
	earliest := time.Time{}

	for _, task := range m.tasks {
		if earliest.IsZero() || task.FireTime.Before(earliest) {
			earliest = task.FireTime
		}
	}

	if earliest.IsZero() {
		if m.armed {
			return m.UnsetAlarm()
		}

		return nil
	}

	return m.ScheduleAlarm(earliest)
}
