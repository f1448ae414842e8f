package query

import "fmt"

// ConfigError reports a suffix configuration source that is missing,
// malformed, or empty after filtering. It is never retried.
type ConfigError struct {
	Source string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("suffix config %s: %s", e.Source, e.Reason)
	}
	return "suffix config: " + e.Reason
}

// ValidationError reports an invalid operand during domain combination.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// LookupError reports a failed whois lookup: network failure, malformed
// response, non-success status, or retry exhaustion.
type LookupError struct {
	Domain string
	Reason string
	Err    error
}

func (e *LookupError) Error() string {
	if e.Domain != "" {
		return fmt.Sprintf("whois lookup failed for %s: %s", e.Domain, e.Reason)
	}
	return "whois lookup failed: " + e.Reason
}

func (e *LookupError) Unwrap() error { return e.Err }
