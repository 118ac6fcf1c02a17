package ratelimit

import (
	"net/http"
	"strings"
)

// MatchEndpoint resolves the budget configuration for a request. Exact
// path+method matches win; a configured path ending in "/" matches as
// a prefix, so "/colleges/" covers "/colleges/{id}". GET /health is
// always unlimited regardless of configuration.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && path == "/health" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
