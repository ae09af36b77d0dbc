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

package eventloop

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by a virtual clock, for tests. Advance moves
// time forward and runs due callbacks in deadline order on the calling
// goroutine, which reproduces the strict sequencing of the real loop without
// wall-clock waits.
type Manual struct {
	now    time.Time
	nextID TaskID
	tasks  []*timerTask
	events []string
}

// NewManual creates a Manual scheduler starting at an arbitrary fixed time.
func NewManual() *Manual {
	return &Manual{now: time.Unix(1_700_000_000, 0)}
}

// Now returns the virtual clock.
func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) ScheduleAfter(d time.Duration, fn func()) TaskID {
	m.nextID++
	m.tasks = append(m.tasks, &timerTask{
		id:       m.nextID,
		deadline: m.now.Add(d),
		fn:       fn,
	})

	return m.nextID
}

func (m *Manual) Unschedule(id TaskID) bool {
	for i, task := range m.tasks {
		if task.id == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}

	return false
}

func (m *Manual) Broadcast(event string) {
	m.events = append(m.events, event)
}

// Events returns the broadcasts recorded so far.
func (m *Manual) Events() []string { return m.events }

// Pending returns how many callbacks are queued.
func (m *Manual) Pending() int { return len(m.tasks) }

// Advance moves the virtual clock and runs every callback whose deadline has
// arrived. Callbacks scheduled by running callbacks run too if their
// deadlines fall within the same window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)

	for {
		next := m.popDue(target)
		if next == nil {
			break
		}

		m.now = next.deadline
		next.fn()
	}

	m.now = target
}

func (m *Manual) popDue(target time.Time) *timerTask {
	sort.SliceStable(m.tasks, func(i, j int) bool {
		return m.tasks[i].deadline.Before(m.tasks[j].deadline)
	})

	if len(m.tasks) == 0 || m.tasks[0].deadline.After(target) {
		return nil
	}

	next := m.tasks[0]
	m.tasks = m.tasks[1:]

	return next
}
