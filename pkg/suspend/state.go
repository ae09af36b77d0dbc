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

package suspend

// State is the lifecycle position of the controller.
type State int

const (
	StateAwake State = iota
	StateSuspending
	StateAsleep
	StateResuming
)

func (s State) String() string {
	switch s {
	case StateAwake:
		return "awake"
	case StateSuspending:
		return "suspending"
	case StateAsleep:
		return "asleep"
	case StateResuming:
		return "resuming"
	default:
		return "unknown"
	}
}

// cycle is the ephemeral record of one suspend attempt.
type cycle struct {
	enteredAt int64 // unix seconds at sleep entry
	reason    string
}
