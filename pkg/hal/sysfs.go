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

package hal

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/papyrus-labs/papyrus/pkg/logger"
	"github.com/papyrus-labs/papyrus/pkg/profile"
)

const (
	powerStatePath         = "/sys/power/state"
	powerStateExtendedPath = "/sys/power/state-extended"
	cpuHotplugPathPattern  = "/sys/devices/system/cpu/cpu%d/online"
	rtcWakealarmPath       = "/sys/class/rtc/rtc0/wakealarm"
)

// sysfsBackend holds the plumbing shared by every platform family: rooted
// path resolution and text-protocol read/write helpers.
type sysfsBackend struct {
	logger logger.Logger
	desc   *profile.CapabilityDescriptor

	// root prefixes every absolute path; tests point it at a scratch dir.
	root string
}

// Option customizes a backend.
type Option func(*sysfsBackend)

// WithRoot re-roots all sysfs paths, for tests against a scratch tree.
func WithRoot(root string) Option {
	return func(b *sysfsBackend) { b.root = root }
}

// New selects and builds the backend for the descriptor's platform family.
func New(desc *profile.CapabilityDescriptor, log logger.Logger, opts ...Option) Backend {
	base := sysfsBackend{logger: log, desc: desc}
	for _, opt := range opts {
		opt(&base)
	}

	if desc.Platform == profile.PlatformSunxi {
		return &sunxiBackend{sysfsBackend: base}
	}

	return &ntxBackend{sysfsBackend: base}
}

func (b *sysfsBackend) path(p string) string {
	if b.root == "" {
		return p
	}

	return filepath.Join(b.root, p)
}

func (b *sysfsBackend) writeString(path, value string) error {
	if err := os.WriteFile(b.path(path), []byte(value), 0o644); err != nil {
		return fmt.Errorf("%w: %s <- %q: %w", ErrHardwareWrite, path, value, err)
	}

	return nil
}

func (b *sysfsBackend) readString(path string) (string, error) {
	data, err := os.ReadFile(b.path(path))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrHardwareRead, path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (b *sysfsBackend) readInt(path string) (int, error) {
	raw, err := b.readString(path)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrHardwareRead, path, err)
	}

	return val, nil
}

// Shared Backend methods. The text protocols below are identical across
// families; only frontlight and LED handling differ.

func (b *sysfsBackend) ReadBatteryCapacity(path string) (int, error) {
	return b.readInt(path)
}

func (b *sysfsBackend) WritePowerState(token string) error {
	// Blocks until hardware resume for the sleep and standby tokens.
	return b.writeString(powerStatePath, token)
}

func (b *sysfsBackend) WriteStateExtended(flag string) error {
	return b.writeString(powerStateExtendedPath, flag)
}

func (b *sysfsBackend) SetCPUOnline(core int, online bool) error {
	flag := "0"
	if online {
		flag = "1"
	}

	return b.writeString(fmt.Sprintf(cpuHotplugPathPattern, core), flag)
}

func (b *sysfsBackend) SupportedPowerStates() ([]string, error) {
	raw, err := b.readString(powerStatePath)
	if err != nil {
		return nil, err
	}

	return strings.Fields(raw), nil
}

func (b *sysfsBackend) SetRTCAlarm(t time.Time) error {
	return b.writeString(rtcWakealarmPath, strconv.FormatInt(t.Unix(), 10))
}

func (b *sysfsBackend) ClearRTCAlarm() error {
	return b.writeString(rtcWakealarmPath, "0")
}

func (b *sysfsBackend) IsCharging() (bool, error) {
	statusPath := filepath.Join(filepath.Dir(b.desc.BatteryPath), "status")

	raw, err := b.readString(statusPath)
	if err != nil {
		// No status file means we cannot prove charging; callers treat the
		// feature as absent.
		return false, err
	}

	return raw == "Charging", nil
}
