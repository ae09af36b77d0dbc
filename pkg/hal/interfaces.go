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

//go:generate mockgen -destination=mock_hal.go -package=hal github.com/papyrus-labs/papyrus/pkg/hal Backend

// Package hal exposes the capability-set interface every physical platform
// family implements, plus the sysfs-backed implementations themselves. The
// backend is selected once at startup from the resolved profile; callers
// never branch per model.
package hal

import (
	"errors"
	"time"
)

var (
	// ErrHardwareWrite wraps a failed control-file write. Recoverable: the
	// caller reports failure and returns to its prior stable state.
	ErrHardwareWrite = errors.New("hardware write failed")

	// ErrHardwareRead wraps a failed telemetry read. Recoverable: cached
	// values stay valid and capability probes default to "feature absent".
	ErrHardwareRead = errors.New("hardware read failed")
)

// Power-state tokens written to the kernel power-state file. Reads of that
// file are not meaningful for state; this is a write-only protocol.
const (
	PowerStateMem     = "mem"
	PowerStateStandby = "standby"
)

// Backend is the hardware access surface for one platform family.
type Backend interface {
	// WriteFrontlight pushes intensity and native-scale warmth to the
	// frontlight controller.
	WriteFrontlight(intensity, warmth int) error

	// ReadBatteryCapacity reads a charge percentage from a telemetry path.
	ReadBatteryCapacity(path string) (int, error)

	// WritePowerState writes a power-state token. For the sleep and standby
	// tokens the write blocks the calling goroutine until hardware resume;
	// that freeze is the intended effect.
	WritePowerState(token string) error

	// WriteStateExtended flags ("1") or unflags ("0") subsystems for suspend.
	WriteStateExtended(flag string) error

	// SetCPUOnline onlines or offlines one logical core.
	SetCPUOnline(core int, online bool) error

	// SupportedPowerStates lists the tokens the kernel accepts.
	SupportedPowerStates() ([]string, error)

	SetChargingLED(on bool) error
	IsCharging() (bool, error)

	// SetRTCAlarm arms the RTC to fire at t; ClearRTCAlarm disarms it.
	SetRTCAlarm(t time.Time) error
	ClearRTCAlarm() error

	// KickTouchController re-initializes the touch controller after resume
	// on boards where it comes back deaf.
	KickTouchController() error
}
