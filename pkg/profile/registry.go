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
	"context"
	"errors"
	"fmt"

	"github.com/papyrus-labs/papyrus/pkg/logger"
)

var (
	// ErrUnknownDevice means the process cannot determine what hardware it
	// runs on. There is no safe fallback descriptor; startup must abort.
	ErrUnknownDevice = errors.New("unknown device")

	errBadVariant = errors.New("inconsistent variant descriptor")
)

// Registry resolves hardware identity into a capability descriptor.
type Registry struct {
	logger logger.Logger

	probeUtility string
	versionFile  string

	// injectable for tests
	probeIdentityFn func(ctx context.Context, utility string) (string, error)
	probeRevisionFn func(versionFile string) int
}

// Option customizes a Registry.
type Option func(*Registry)

// WithProbeUtility overrides the vendor probe utility path.
func WithProbeUtility(path string) Option {
	return func(r *Registry) { r.probeUtility = path }
}

// WithVersionFile overrides the vendor version file path.
func WithVersionFile(path string) Option {
	return func(r *Registry) { r.versionFile = path }
}

// NewRegistry creates a Registry with the stock variant table.
func NewRegistry(log logger.Logger, opts ...Option) *Registry {
	r := &Registry{
		logger:          log,
		probeUtility:    defaultProbeUtility,
		versionFile:     defaultVersionFile,
		probeIdentityFn: probeIdentity,
		probeRevisionFn: probeRevision,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve materializes the descriptor for an identity and revision. The leaf
// with the highest minRevision not exceeding the probed revision wins; an
// identity with no leaves is ErrUnknownDevice.
func (r *Registry) Resolve(identity string, revision int) (*CapabilityDescriptor, error) {
	leaves, ok := variants[identity]
	if !ok || len(leaves) == 0 {
		return nil, fmt.Errorf("%w: no variant for identity %q", ErrUnknownDevice, identity)
	}

	var selected *variant

	for i := range leaves {
		leaf := &leaves[i]
		if leaf.minRevision > revision {
			continue
		}

		if selected == nil || leaf.minRevision > selected.minRevision {
			selected = leaf
		}
	}

	if selected == nil {
		return nil, fmt.Errorf("%w: identity %q has no leaf for revision %d", ErrUnknownDevice, identity, revision)
	}

	desc := materialize(identity, revision, selected)

	if err := desc.validate(); err != nil {
		return nil, err
	}

	r.logger.Info().
		Str("codename", desc.Codename).
		Str("model", desc.Model).
		Int("revision", desc.Revision).
		Str("platform", desc.Platform).
		Msg("Resolved device profile")

	return &desc, nil
}

// Detect probes the hardware identity and revision, then resolves them.
func (r *Registry) Detect(ctx context.Context) (*CapabilityDescriptor, error) {
	identity, err := r.probeIdentityFn(ctx, r.probeUtility)
	if err != nil {
		return nil, err
	}

	revision := r.probeRevisionFn(r.versionFile)

	return r.Resolve(identity, revision)
}
