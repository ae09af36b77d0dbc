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

// papyrusd is the power-state and device-capability daemon of the papyrus
// reading appliance. It resolves the hardware variant at startup, then owns
// the frontlight, battery telemetry, and the suspend/resume lifecycle.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papyrus-labs/papyrus/pkg/config"
	"github.com/papyrus-labs/papyrus/pkg/eventloop"
	"github.com/papyrus-labs/papyrus/pkg/hal"
	"github.com/papyrus-labs/papyrus/pkg/logger"
	"github.com/papyrus-labs/papyrus/pkg/models"
	"github.com/papyrus-labs/papyrus/pkg/power"
	"github.com/papyrus-labs/papyrus/pkg/profile"
	"github.com/papyrus-labs/papyrus/pkg/suspend"
	"github.com/papyrus-labs/papyrus/pkg/version"
	"github.com/papyrus-labs/papyrus/pkg/wakeup"
)

const defaultConfigPath = "/etc/papyrus/papyrusd.json"

// Config is the daemon configuration.
type Config struct {
	Logging      *logger.Config  `json:"logging,omitempty"`
	ProbeUtility string          `json:"probe_utility,omitempty"`
	VersionFile  string          `json:"version_file,omitempty"`
	ReduceCores  bool            `json:"reduce_cores"`
	SettleDelay  models.Duration `json:"settle_delay,omitempty"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	return nil
}

var rootCmd = &cobra.Command{
	Use:   "papyrusd",
	Short: "papyrusd — power and capability core for the papyrus reader",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	var configPath string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Resolve the device profile and run the power core",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	runCmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "Path to daemon config file")

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the resolved capability descriptor as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return probe(cmd.Context())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(*cobra.Command, []string) {
			fmt.Println(version.GetFullVersion())
		},
	}

	rootCmd.AddCommand(runCmd, probeCmd, versionCmd)
}

func loadConfig(ctx context.Context, path string) (*Config, error) {
	var cfg Config

	if err := config.LoadAndValidate(ctx, path, &cfg); err != nil {
		// A missing config file is fine: everything has a default.
		if errors.Is(err, os.ErrNotExist) {
			cfg.Logging = logger.DefaultConfig()
			return &cfg, nil
		}

		return nil, err
	}

	return &cfg, nil
}

func registryOptions(cfg *Config) []profile.Option {
	var opts []profile.Option

	if cfg.ProbeUtility != "" {
		opts = append(opts, profile.WithProbeUtility(cfg.ProbeUtility))
	}

	if cfg.VersionFile != "" {
		opts = append(opts, profile.WithVersionFile(cfg.VersionFile))
	}

	return opts
}

func run(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	desc, err := profile.NewRegistry(log, registryOptions(cfg)...).Detect(ctx)
	if err != nil {
		// No descriptor means no safe way to touch hardware.
		return fmt.Errorf("device identification failed: %w", err)
	}

	backend := hal.New(desc, log)
	loop := eventloop.NewLoop(log)

	pw := power.NewController(desc, backend, loop, log)
	wk := wakeup.NewManager(backend, wakeup.SystemClock(), log)
	sr := suspend.NewController(desc, backend, pw, wk, loop, log,
		suspend.WithSettleDelay(time.Duration(cfg.SettleDelay)))

	if cfg.ReduceCores {
		sr.ReduceCPUCores(ctx)
	}

	log.Info().
		Str("version", version.GetFullVersion()).
		Str("model", desc.Model).
		Int("battery_pct", pw.Capacity()).
		Msg("papyrusd running")

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func probe(ctx context.Context) error {
	log, err := logger.New(&logger.Config{Level: "warn", Output: "stderr"})
	if err != nil {
		return err
	}

	desc, err := profile.NewRegistry(log).Detect(ctx)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}
