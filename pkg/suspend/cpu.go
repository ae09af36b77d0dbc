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

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
)

var countsWithContext = cpu.CountsWithContext

// ReduceCPUCores offlines every logical core but cpu0 on multi-core-capable
// descriptors. Called once at first boot; these readers spend their life
// waiting on page turns and one core is plenty. No-op on single-core units.
func (c *Controller) ReduceCPUCores(ctx context.Context) {
	if !c.desc.HasMultiCore {
		return
	}

	count, err := countsWithContext(ctx, true)
	if err != nil {
		c.logger.Warn().Err(err).Msg("CPU count probe failed, leaving cores online")
		return
	}

	for core := 1; core < count; core++ {
		if err := c.backend.SetCPUOnline(core, false); err != nil {
			c.logger.Warn().Err(err).Int("core", core).Msg("Core offline failed")
		}
	}

	c.logger.Info().Int("cores", count).Msg("Reduced to single active core")
}
