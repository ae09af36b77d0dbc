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

// Package profile resolves a hardware identity string into an immutable
// capability descriptor for the device the process is running on.
package profile

import (
	"fmt"
)

// Platform families select the hardware backend implementation.
const (
	PlatformNTX   = "ntx"
	PlatformSunxi = "sunxi"
)

// CapabilityDescriptor records what a physical unit supports and where its
// control files live. It is built once at startup and never mutated after
// Resolve returns it.
type CapabilityDescriptor struct {
	Codename string `json:"codename"`
	Model    string `json:"model"`
	Revision int    `json:"revision"`
	Platform string `json:"platform"`

	HasFrontlight         bool `json:"has_frontlight"`
	HasNaturalLight       bool `json:"has_natural_light"`
	HasMultiCore          bool `json:"has_multi_core"`
	CanStandby            bool `json:"can_standby"`
	HasChargingLED        bool `json:"has_charging_led"`
	HasGSensor            bool `json:"has_g_sensor"`
	ReliableWaitForUpdate bool `json:"reliable_wait_for_update"`

	BatteryPath           string `json:"battery_path"`
	AuxBatteryPath        string `json:"aux_battery_path,omitempty"`
	NaturalLightMixerPath string `json:"natural_light_mixer_path,omitempty"`
	TouchDevPath          string `json:"touch_dev_path"`
	PowerDevPath          string `json:"power_dev_path"`

	DisplayDPI   int `json:"display_dpi"`
	IntensityMin int `json:"intensity_min"`
	IntensityMax int `json:"intensity_max"`
	WarmthMin    int `json:"warmth_min"`
	WarmthMax    int `json:"warmth_max"`
	FingerSlot   int `json:"finger_slot"`
	PressureCode int `json:"pressure_code"`
}

// validate enforces the internal-consistency invariants every materialized
// descriptor must satisfy. It runs once per Resolve, after overlays apply.
func (d *CapabilityDescriptor) validate() error {
	if d.IntensityMin >= d.IntensityMax {
		return fmt.Errorf("%w: %s intensity bounds [%d,%d]", errBadVariant, d.Codename, d.IntensityMin, d.IntensityMax)
	}

	if d.WarmthMin >= d.WarmthMax {
		return fmt.Errorf("%w: %s warmth bounds [%d,%d]", errBadVariant, d.Codename, d.WarmthMin, d.WarmthMax)
	}

	// A mixer path observed non-empty implies the natural-light channel is
	// present even when the variant table predates the discovery.
	if d.NaturalLightMixerPath != "" {
		d.HasNaturalLight = true
	}

	if d.HasNaturalLight && d.NaturalLightMixerPath == "" {
		return fmt.Errorf("%w: %s natural light flagged without mixer path", errBadVariant, d.Codename)
	}

	return nil
}
