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

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

const (
	defaultProbeUtility = "/bin/kobo_config.sh"
	defaultVersionFile  = "/mnt/onboard/.kobo/version"

	envProduct     = "PRODUCT"
	envModelNumber = "MODEL_NUMBER"
)

// probeIdentity returns the hardware codename. The PRODUCT environment value
// takes precedence; otherwise the vendor probe utility is invoked and its
// single line of output is used. Probe failures are never cached: the caller
// treats them as fatal.
func probeIdentity(ctx context.Context, utility string) (string, error) {
	if product := os.Getenv(envProduct); product != "" {
		return strings.ToLower(strings.TrimSpace(product)), nil
	}

	out, err := exec.CommandContext(ctx, utility).Output()
	if err != nil {
		return "", fmt.Errorf("%w: probe utility %s: %w", ErrUnknownDevice, utility, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	if !scanner.Scan() {
		return "", fmt.Errorf("%w: probe utility %s produced no output", ErrUnknownDevice, utility)
	}

	identity := strings.ToLower(strings.TrimSpace(scanner.Text()))
	if identity == "" {
		return "", fmt.Errorf("%w: probe utility %s produced empty identity", ErrUnknownDevice, utility)
	}

	return identity, nil
}

// probeRevision returns the numeric hardware sub-revision. MODEL_NUMBER wins;
// otherwise the last comma-separated field of the vendor version file is
// parsed. A missing or unparsable revision degrades to zero, which matches
// every single-leaf variant.
func probeRevision(versionFile string) int {
	if raw := os.Getenv(envModelNumber); raw != "" {
		if rev, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return rev
		}
	}

	data, err := os.ReadFile(versionFile)
	if err != nil {
		return 0
	}

	line := strings.TrimSpace(string(data))

	fields := strings.Split(line, ",")

	rev, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
	if err != nil {
		return 0
	}

	return rev
}
