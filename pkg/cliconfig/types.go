// Package cliconfig provides configuration types and loading for the debbugs CLI.
package cliconfig

import (
	"fmt"
	"net/url"
	"strings"
)

// CLIConfig represents the complete configuration for the debbugs CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.debbugsrc.yaml in current directory)
// 4. Global config file (~/.config/debbugs/config.yaml)
// 5. Default values (lowest priority)
type CLIConfig struct {
	// Endpoint is the SOAP endpoint URL of the bug tracker.
	Endpoint string `yaml:"endpoint" json:"endpoint"`

	// ActionNamespace, when set, is prefixed to the operation name in the
	// SOAPAction request header (namespace#operation). Most deployments
	// accept the bare operation name.
	ActionNamespace string `yaml:"actionNamespace,omitempty" json:"actionNamespace,omitempty"`

	// Timeout is the per-request timeout in seconds.
	Timeout int `yaml:"timeout" json:"timeout"`

	// Output settings
	Verbose bool `yaml:"verbose" json:"verbose"`
	JSON    bool `yaml:"json" json:"json"`

	// Sources tracks where each value came from (for debugging).
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records which keys were explicitly present in a loaded
	// config file. Needed to distinguish an explicit false from an
	// absent boolean during merging.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Validate checks the configuration for invalid values.
func (c *CLIConfig) Validate() error {
	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil {
			return fmt.Errorf("endpoint %q is not a valid URL: %w", c.Endpoint, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint %q must use http or https", c.Endpoint)
		}
		if u.Host == "" {
			return fmt.Errorf("endpoint %q has no host", c.Endpoint)
		}
	}
	if c.Timeout < 0 || c.Timeout > 3600 {
		return fmt.Errorf("timeout %d is out of range (0-3600)", c.Timeout)
	}
	if c.ActionNamespace != "" && strings.ContainsAny(c.ActionNamespace, " \t\r\n") {
		return fmt.Errorf("actionNamespace %q must not contain whitespace", c.ActionNamespace)
	}
	return nil
}
