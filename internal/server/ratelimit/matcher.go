package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Returns nil if no configuration matches. Patterns match the
// exact path or a path suffix, so "/ratings" covers "/sessions/{id}/ratings".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Special case: health check endpoint is unlimited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	// Exact match first
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	// Suffix match
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(path, config.Path) {
			return config
		}
	}

	return nil
}
