/*
 * pycontract
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package config loads the settings that govern a monitoring run's ambient
behaviour - diagnostic tracing, progress heartbeats, message rendering -
as opposed to a monitor's own Schema, which is always built in Go code.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

/*
ProductVersion is the current version of pycontract.
*/
const ProductVersion = "1.0.0"

/*
Config holds the settings a runner may read from a YAML file, typically
named pycontract.yaml, to control an evaluation run without recompiling.
*/
type Config struct {
	// LogLevel is one of "debug", "info" or "error" (tracelog.LogLevel).
	LogLevel string `yaml:"logLevel"`

	// Verbose turns on a trace line for every event a monitor evaluates.
	Verbose bool `yaml:"verbose"`

	// GCTrace turns on a trace line whenever a state instance is dropped
	// from a vector (§9's "destructor-trace" switch).
	GCTrace bool `yaml:"gcTrace"`

	// ProgressHeartbeat, if positive, makes the engine log a heartbeat
	// line every N events (0 disables it).
	ProgressHeartbeat int `yaml:"progressHeartbeat"`

	// ShowStateEvent controls whether transition-error messages include
	// the "state" and "event" lines (Monitor.ShowStateEvent's default).
	ShowStateEvent *bool `yaml:"showStateEvent"`

	// PrintSummary controls whether a runner is expected to print
	// Monitor.Summary after End (Monitor.PrintSummary's default).
	PrintSummary *bool `yaml:"printSummary"`
}

/*
DefaultConfig is the configuration used when no file is present.
*/
var DefaultConfig = Config{
	LogLevel: "error",
}

/*
Load reads and parses a YAML configuration file at path. A missing or
empty file yields DefaultConfig with no errors, mirroring how a monitor
run should work with zero setup. A malformed file yields a nil Config and
the parse error.
*/
func Load(path string) (*Config, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig
			return &cfg, nil
		}
		return nil, []error{fmt.Errorf("failed to read config file: %w", err)}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		cfg := DefaultConfig
		return &cfg, nil
	}

	cfg := DefaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, []error{fmt.Errorf("failed to parse config YAML: %w", err)}
	}

	var validationErrors []error
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "error" {
		validationErrors = append(validationErrors,
			fmt.Errorf("logLevel: invalid value %q, must be debug, info or error", cfg.LogLevel))
		cfg.LogLevel = DefaultConfig.LogLevel
	}
	if cfg.ProgressHeartbeat < 0 {
		validationErrors = append(validationErrors,
			fmt.Errorf("progressHeartbeat: must not be negative, got %d", cfg.ProgressHeartbeat))
		cfg.ProgressHeartbeat = 0
	}

	return &cfg, validationErrors
}

/*
ShowStateEventOrDefault returns the ShowStateEvent setting, or def if the
file left it unset.
*/
func (c *Config) ShowStateEventOrDefault(def bool) bool {
	if c.ShowStateEvent == nil {
		return def
	}
	return *c.ShowStateEvent
}

/*
PrintSummaryOrDefault returns the PrintSummary setting, or def if the file
left it unset.
*/
func (c *Config) PrintSummaryOrDefault(def bool) bool {
	if c.PrintSummary == nil {
		return def
	}
	return *c.PrintSummary
}
