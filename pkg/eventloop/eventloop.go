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

// Package eventloop provides the single-threaded cooperative scheduler the
// power core runs on. Callbacks are strictly sequenced: they never run
// concurrently with each other or with a blocking hardware call, and a
// callback that has begun running cannot be cancelled mid-flight.
package eventloop

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/papyrus-labs/papyrus/pkg/logger"
)

// TaskID identifies a scheduled callback for cancellation.
type TaskID uint64

// Scheduler is the contract the controllers program against.
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func()) TaskID
	Unschedule(id TaskID) bool
	Broadcast(event string)
}

// Sink receives broadcast event names. The UI collaborator registers one;
// the core never inspects who is listening.
type Sink func(event string)

type timerTask struct {
	id       TaskID
	deadline time.Time
	fn       func()
	index    int
}

type timerQueue []*timerTask

func (q timerQueue) Len() int            { return len(q) }
func (q timerQueue) Less(i, j int) bool  { return q[i].deadline.Before(q[j].deadline) }
func (q timerQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *timerQueue) Push(x interface{}) { t := x.(*timerTask); t.index = len(*q); *q = append(*q, t) }
func (q *timerQueue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return t
}

// Loop is the production Scheduler. One goroutine calls Run; ScheduleAfter
// and Unschedule may be called from within running callbacks (the common
// case) or from the setup phase before Run starts.
type Loop struct {
	logger logger.Logger

	mu     sync.Mutex
	queue  timerQueue
	byID   map[TaskID]*timerTask
	nextID TaskID
	wake   chan struct{}
	sinks  []Sink
}

// NewLoop creates an empty scheduler.
func NewLoop(log logger.Logger) *Loop {
	return &Loop{
		logger: log,
		byID:   make(map[TaskID]*timerTask),
		wake:   make(chan struct{}, 1),
	}
}

// RegisterSink adds a broadcast listener. Must be called before Run.
func (l *Loop) RegisterSink(sink Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sinks = append(l.sinks, sink)
}

// ScheduleAfter queues fn to run once d has elapsed.
func (l *Loop) ScheduleAfter(d time.Duration, fn func()) TaskID {
	l.mu.Lock()

	l.nextID++
	task := &timerTask{
		id:       l.nextID,
		deadline: time.Now().Add(d),
		fn:       fn,
	}

	heap.Push(&l.queue, task)
	l.byID[task.id] = task

	l.mu.Unlock()

	l.kick()

	return task.id
}

// Unschedule removes a pending callback. Returns false if it already ran or
// was never scheduled.
func (l *Loop) Unschedule(id TaskID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	task, ok := l.byID[id]
	if !ok {
		return false
	}

	heap.Remove(&l.queue, task.index)
	delete(l.byID, id)

	return true
}

// Broadcast delivers an event name to every registered sink, in registration
// order, on the caller's goroutine.
func (l *Loop) Broadcast(event string) {
	l.mu.Lock()
	sinks := make([]Sink, len(l.sinks))
	copy(sinks, l.sinks)
	l.mu.Unlock()

	l.logger.Debug().Str("event", event).Msg("Broadcasting event")

	for _, sink := range sinks {
		sink(event)
	}
}

// Run drives the timer queue until ctx is cancelled. Expired callbacks run
// sequentially on this goroutine.
func (l *Loop) Run(ctx context.Context) error {
	for {
		fn, wait := l.nextReady()

		if fn != nil {
			fn()
			continue
		}

		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-l.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// nextReady pops the earliest expired task, or reports how long until the
// next deadline. An empty queue parks for a long poll; kick() interrupts it.
func (l *Loop) nextReady() (func(), time.Duration) {
	const idlePoll = time.Hour

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, idlePoll
	}

	head := l.queue[0]

	now := time.Now()
	if head.deadline.After(now) {
		return nil, head.deadline.Sub(now)
	}

	heap.Pop(&l.queue)
	delete(l.byID, head.id)

	return head.fn, 0
}

func (l *Loop) kick() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
