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

package profile

// overlay overrides a strict subset of descriptor fields. Pointer fields are
// "unset" when nil, so an overlay only describes what differs from the base.
type overlay struct {
	Model    *string
	Platform *string

	HasFrontlight         *bool
	HasNaturalLight       *bool
	HasMultiCore          *bool
	CanStandby            *bool
	HasChargingLED        *bool
	HasGSensor            *bool
	ReliableWaitForUpdate *bool

	BatteryPath           *string
	AuxBatteryPath        *string
	NaturalLightMixerPath *string
	TouchDevPath          *string
	PowerDevPath          *string

	DisplayDPI   *int
	IntensityMin *int
	IntensityMax *int
	WarmthMin    *int
	WarmthMax    *int
	FingerSlot   *int
	PressureCode *int
}

// variant is one leaf of the override tree. minRevision disambiguates models
// that share a codename but differ in a hardware sub-revision: the leaf with
// the highest minRevision not exceeding the probed revision wins.
type variant struct {
	minRevision int
	over        overlay
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
func intp(i int) *int       { return &i }

// baseDescriptor is the shared default every leaf inherits. It describes the
// least capable unit in the fleet: monochrome frontlight, single core, no
// standby support.
func baseDescriptor() CapabilityDescriptor {
	return CapabilityDescriptor{
		Platform:     PlatformNTX,
		Model:        "unknown",
		DisplayDPI:   167,
		IntensityMin: 0,
		IntensityMax: 100,
		WarmthMin:    0,
		WarmthMax:    10,
		FingerSlot:   0,
		PressureCode: 24,

		HasFrontlight: true,

		BatteryPath:  "/sys/class/power_supply/mc13892_bat/capacity",
		TouchDevPath: "/dev/input/event1",
		PowerDevPath: "/dev/input/event0",
	}
}

// variants maps probe codenames to their leaves. Exactly one leaf matches a
// given (codename, revision) pair.
var variants = map[string][]variant{
	"trilogy": {{
		over: overlay{
			Model:         strp("Touch"),
			HasFrontlight: boolp(false),
		},
	}},
	"phoenix": {{
		over: overlay{
			Model:        strp("Aura"),
			DisplayDPI:   intp(212),
			PressureCode: intp(58),
		},
	}},
	"dragon": {{
		over: overlay{
			Model:      strp("Aura H2O"),
			DisplayDPI: intp(265),
			HasGSensor: boolp(true),
		},
	}},
	"alyssum": {{
		over: overlay{
			Model:      strp("Glo HD"),
			DisplayDPI: intp(300),
		},
	}},
	// snow shipped twice: the original board and a mark-7 refresh that gained
	// a natural-light mixer and standby support.
	"snow": {
		{
			over: overlay{
				Model:      strp("Aura H2O Edition 2"),
				DisplayDPI: intp(265),
			},
		},
		{
			minRevision: 7,
			over: overlay{
				Model:                 strp("Aura H2O Edition 2 r2"),
				DisplayDPI:            intp(265),
				CanStandby:            boolp(true),
				NaturalLightMixerPath: strp("/sys/class/backlight/lm3630a_led/color"),
			},
		},
	},
	"daylight": {{
		over: overlay{
			Model:                 strp("Aura One"),
			DisplayDPI:            intp(300),
			NaturalLightMixerPath: strp("/sys/class/backlight/lm3630a_led/color"),
		},
	}},
	"nova": {{
		over: overlay{
			Model:                 strp("Clara HD"),
			DisplayDPI:            intp(300),
			CanStandby:            boolp(true),
			NaturalLightMixerPath: strp("/sys/class/backlight/mxc_msp430.0/color"),
			BatteryPath:           strp("/sys/class/power_supply/battery/capacity"),
		},
	}},
	"frost": {{
		over: overlay{
			Model:                 strp("Forma"),
			DisplayDPI:            intp(300),
			CanStandby:            boolp(true),
			HasMultiCore:          boolp(true),
			HasGSensor:            boolp(true),
			HasChargingLED:        boolp(true),
			ReliableWaitForUpdate: boolp(true),
			NaturalLightMixerPath: strp("/sys/class/backlight/tlc5947_bl/color"),
			BatteryPath:           strp("/sys/class/power_supply/battery/capacity"),
		},
	}},
	"storm": {{
		over: overlay{
			Model:                 strp("Libra H2O"),
			DisplayDPI:            intp(300),
			CanStandby:            boolp(true),
			HasGSensor:            boolp(true),
			HasChargingLED:        boolp(true),
			ReliableWaitForUpdate: boolp(true),
			NaturalLightMixerPath: strp("/sys/class/backlight/lm3630a_led/color"),
			BatteryPath:           strp("/sys/class/power_supply/battery/capacity"),
		},
	}},
	"cadmus": {{
		over: overlay{
			Model:                 strp("Sage"),
			Platform:              strp(PlatformSunxi),
			DisplayDPI:            intp(300),
			CanStandby:            boolp(true),
			HasMultiCore:          boolp(true),
			HasGSensor:            boolp(true),
			HasChargingLED:        boolp(true),
			NaturalLightMixerPath: strp("/sys/class/leds/aw99703-bl_FL1/color"),
			BatteryPath:           strp("/sys/class/power_supply/battery/capacity"),
			// The power cover carries its own cell.
			AuxBatteryPath: strp("/sys/class/misc/cilix/cilix_bat_capacity"),
		},
	}},
	"goldfinch": {{
		over: overlay{
			Model:                 strp("Clara 2E"),
			Platform:              strp(PlatformSunxi),
			DisplayDPI:            intp(300),
			CanStandby:            boolp(true),
			NaturalLightMixerPath: strp("/sys/class/leds/aw99703-bl_FL1/color"),
			BatteryPath:           strp("/sys/class/power_supply/battery/capacity"),
		},
	}},
}

// materialize composes the base descriptor with a leaf overlay.
func materialize(codename string, revision int, v *variant) CapabilityDescriptor {
	d := baseDescriptor()
	d.Codename = codename
	d.Revision = revision

	o := &v.over

	if o.Model != nil {
		d.Model = *o.Model
	}

	if o.Platform != nil {
		d.Platform = *o.Platform
	}

	if o.HasFrontlight != nil {
		d.HasFrontlight = *o.HasFrontlight
	}

	if o.HasNaturalLight != nil {
		d.HasNaturalLight = *o.HasNaturalLight
	}

	if o.HasMultiCore != nil {
		d.HasMultiCore = *o.HasMultiCore
	}

	if o.CanStandby != nil {
		d.CanStandby = *o.CanStandby
	}

	if o.HasChargingLED != nil {
		d.HasChargingLED = *o.HasChargingLED
	}

	if o.HasGSensor != nil {
		d.HasGSensor = *o.HasGSensor
	}

	if o.ReliableWaitForUpdate != nil {
		d.ReliableWaitForUpdate = *o.ReliableWaitForUpdate
	}

	if o.BatteryPath != nil {
		d.BatteryPath = *o.BatteryPath
	}

	if o.AuxBatteryPath != nil {
		d.AuxBatteryPath = *o.AuxBatteryPath
	}

	if o.NaturalLightMixerPath != nil {
		d.NaturalLightMixerPath = *o.NaturalLightMixerPath
	}

	if o.TouchDevPath != nil {
		d.TouchDevPath = *o.TouchDevPath
	}

	if o.PowerDevPath != nil {
		d.PowerDevPath = *o.PowerDevPath
	}

	if o.DisplayDPI != nil {
		d.DisplayDPI = *o.DisplayDPI
	}

	if o.IntensityMin != nil {
		d.IntensityMin = *o.IntensityMin
	}

	if o.IntensityMax != nil {
		d.IntensityMax = *o.IntensityMax
	}

	if o.WarmthMin != nil {
		d.WarmthMin = *o.WarmthMin
	}

	if o.WarmthMax != nil {
		d.WarmthMax = *o.WarmthMax
	}

	if o.FingerSlot != nil {
		d.FingerSlot = *o.FingerSlot
	}

	if o.PressureCode != nil {
		d.PressureCode = *o.PressureCode
	}

	return d
}
