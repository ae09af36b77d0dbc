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

package models

// Event names broadcast to the UI collaborator. The core only emits; it holds
// no subscriber list and does not wait for handlers.
const (
	// EventFrontlightChanged fires after a frontlight intensity or warmth
	// write actually changed hardware state.
	EventFrontlightChanged = "FrontlightStateChanged"

	// EventWakeupLimit fires when the unexpected-wakeup retry ceiling is hit
	// and the controller gives up re-suspending. Policy for what to show the
	// user belongs to the subscriber, not this core.
	EventWakeupLimit = "UnexpectedWakeupLimit"

	// EventSuspended and EventResumed bracket a completed sleep cycle.
	EventSuspended = "Suspended"
	EventResumed   = "Resumed"
)
