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
	"strconv"
)

const (
	ntxFrontlightPath  = "/sys/class/backlight/mxc_msp430.0/brightness"
	ntxChargingLEDPath = "/sys/class/leds/pmic_ledsb/brightness"
	ntxTouchResetPath  = "/sys/devices/virtual/input/input1/neocmd"
)

// ntxBackend drives the NTX board family. Frontlight intensity and the
// natural-light mixer live in separate control files.
type ntxBackend struct {
	sysfsBackend
}

func (b *ntxBackend) WriteFrontlight(intensity, warmth int) error {
	if err := b.writeString(ntxFrontlightPath, strconv.Itoa(intensity)); err != nil {
		return err
	}

	if b.desc.HasNaturalLight {
		return b.writeString(b.desc.NaturalLightMixerPath, strconv.Itoa(warmth))
	}

	return nil
}

func (b *ntxBackend) SetChargingLED(on bool) error {
	flag := "0"
	if on {
		flag = "1"
	}

	return b.writeString(ntxChargingLEDPath, flag)
}

func (b *ntxBackend) KickTouchController() error {
	// The controller ignores the first command after resume; "1" is the
	// documented re-init sequence for these boards.
	return b.writeString(ntxTouchResetPath, "1")
}
