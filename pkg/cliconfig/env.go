package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names recognized by the CLI.
const (
	EnvEndpoint        = "DEBBUGS_ENDPOINT"
	EnvActionNamespace = "DEBBUGS_ACTION_NAMESPACE"
	EnvTimeout         = "DEBBUGS_TIMEOUT"
	EnvVerbose         = "DEBBUGS_VERBOSE"
	EnvJSON            = "DEBBUGS_JSON"
)

// LoadEnvConfig applies environment variables to cfg, updating source tracking.
// Unset or unparsable variables are ignored.
func LoadEnvConfig(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvEndpoint); v != "" {
		cfg.Endpoint = v
		cfg.Sources["endpoint"] = SourceEnv
	}
	if v := os.Getenv(EnvActionNamespace); v != "" {
		cfg.ActionNamespace = v
		cfg.Sources["actionNamespace"] = SourceEnv
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = n
			cfg.Sources["timeout"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
			cfg.Sources["verbose"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvJSON); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.JSON = b
			cfg.Sources["json"] = SourceEnv
		}
	}
}
