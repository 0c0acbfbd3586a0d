package cliconfig

// DefaultEndpoint is the SOAP endpoint used when no other source sets one.
const DefaultEndpoint = "https://bugs.debian.org/cgi-bin/soap.cgi"

// DefaultTimeout is the default per-request timeout in seconds.
const DefaultTimeout = 30

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
		Sources:  make(map[string]string),
	}

	// Mark all as default source
	cfg.Sources["endpoint"] = SourceDefault
	cfg.Sources["timeout"] = SourceDefault

	return cfg
}
