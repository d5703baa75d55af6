/*
Copyright 2025 Lissto.

Licensed under the Sustainable Use License, Version 1.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://github.com/lissto-dev/restore-operator/blob/main/LICENSE.md

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the restore operator configuration
type Config struct {
	Source      SourceConfig      `yaml:"source"`
	Destination DestinationConfig `yaml:"destination"`
	Tracking    TrackingConfig    `yaml:"tracking"`
	Poll        PollConfig        `yaml:"poll"`
	Restore     RestoreConfig     `yaml:"restore"`
	Storage     StorageConfig     `yaml:"storage"`
}

// SourceConfig scopes where completed backups are discovered
type SourceConfig struct {
	Namespace string `yaml:"namespace"`
}

// DestinationConfig scopes where restores are created and names the data
// store they converge onto
type DestinationConfig struct {
	Namespace string `yaml:"namespace"`
	DataStore string `yaml:"dataStore"`
}

// TrackingConfig names the ConfigMap holding the restore high-water mark
type TrackingConfig struct {
	ConfigMap string `yaml:"configMap"`
}

// PollConfig holds the main loop cadence
type PollConfig struct {
	IntervalSeconds int `yaml:"intervalSeconds"`
}

// RestoreConfig bounds the wait for restore completion
type RestoreConfig struct {
	TimeoutSeconds       int `yaml:"timeoutSeconds"`
	ProbeIntervalSeconds int `yaml:"probeIntervalSeconds"`
}

// StorageConfig carries object storage settings. They are copied
// verbatim into each restore request's backup source and never
// interpreted by the operator.
type StorageConfig struct {
	Region            string `yaml:"region"`
	Endpoint          string `yaml:"endpoint"`
	CredentialsSecret string `yaml:"credentialsSecret"`
}

// LoadConfig loads configuration from a YAML file on top of defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Source.Namespace == "" {
		return fmt.Errorf("source.namespace is required")
	}
	if c.Destination.Namespace == "" {
		return fmt.Errorf("destination.namespace is required")
	}
	if c.Destination.DataStore == "" {
		return fmt.Errorf("destination.dataStore is required")
	}
	if c.Tracking.ConfigMap == "" {
		return fmt.Errorf("tracking.configMap is required")
	}
	if c.Poll.IntervalSeconds <= 0 {
		return fmt.Errorf("poll.intervalSeconds must be positive")
	}
	if c.Restore.TimeoutSeconds <= 0 {
		return fmt.Errorf("restore.timeoutSeconds must be positive")
	}
	if c.Restore.ProbeIntervalSeconds <= 0 {
		return fmt.Errorf("restore.probeIntervalSeconds must be positive")
	}
	return nil
}

// PollInterval returns the main loop cadence as a duration
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalSeconds) * time.Second
}

// RestoreTimeout returns the bound on a single restore wait
func (c *Config) RestoreTimeout() time.Duration {
	return time.Duration(c.Restore.TimeoutSeconds) * time.Second
}

// ProbeInterval returns the restore completion poll cadence
func (c *Config) ProbeInterval() time.Duration {
	return time.Duration(c.Restore.ProbeIntervalSeconds) * time.Second
}

// DefaultConfig returns a configuration with sensible defaults.
// Source and destination scoping have no defaults and must be set.
func DefaultConfig() *Config {
	return &Config{
		Tracking: TrackingConfig{
			ConfigMap: "restore-tracking",
		},
		Poll: PollConfig{
			IntervalSeconds: 60,
		},
		Restore: RestoreConfig{
			TimeoutSeconds:       7200,
			ProbeIntervalSeconds: 10,
		},
	}
}
