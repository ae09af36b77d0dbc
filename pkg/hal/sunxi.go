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
)

const (
	sunxiFrontlightPath  = "/sys/class/leds/aw99703-bl_FL1/brightness"
	sunxiChargingLEDPath = "/sys/class/leds/GLED/brightness"
	sunxiTouchResetPath  = "/sys/class/touchscreen/reset"
)

// sunxiBackend drives the allwinner board family. The LED controller takes
// intensity and warmth in one combined write.
type sunxiBackend struct {
	sysfsBackend
}

func (b *sunxiBackend) WriteFrontlight(intensity, warmth int) error {
	if b.desc.HasNaturalLight {
		return b.writeString(b.desc.NaturalLightMixerPath, fmt.Sprintf("%d %d", intensity, warmth))
	}

	return b.writeString(sunxiFrontlightPath, fmt.Sprintf("%d", intensity))
}

func (b *sunxiBackend) SetChargingLED(on bool) error {
	flag := "0"
	if on {
		flag = "255"
	}

	return b.writeString(sunxiChargingLEDPath, flag)
}

func (b *sunxiBackend) KickTouchController() error {
	return b.writeString(sunxiTouchResetPath, "1")
}
