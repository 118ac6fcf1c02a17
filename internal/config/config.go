// Package config provides configuration loading and validation for the
// advisor CLI and server. Values come from a JSON file, environment
// variables, and CLI flags, in increasing order of precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds everything the advisor binaries can be configured with.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Generative layer
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key; empty disables restyle
	GeminiModel  string `json:"gemini_model,omitempty"`   // Override for the standard-tier model

	// Research layer
	Research       bool `json:"research,omitempty"`        // Fetch live notes about candidate schools
	ResearchPerReq int  `json:"research_per_req,omitempty"` // Max schools researched per request

	// Behavior
	UserName string `json:"user_name,omitempty"` // Default advisee name for CLI sessions
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
}

// Environment variable names recognized by FromEnv.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"
	EnvPort         = "ADVISOR_PORT"
)

// DefaultPort is the HTTP listen port when nothing else is configured.
const DefaultPort = 8080

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills empty fields from environment variables. File and flag
// values win over the environment for everything except the API key,
// which is environment-first so it stays out of config files.
func (c *Config) FromEnv() {
	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		c.GeminiAPIKey = key
	}
	if c.GeminiModel == "" {
		c.GeminiModel = os.Getenv(EnvGeminiModel)
	}
	if c.Port == 0 {
		if port := os.Getenv(EnvPort); port != "" {
			fmt.Sscanf(port, "%d", &c.Port)
		}
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ResearchPerReq < 0 {
		return fmt.Errorf("config error: 'research_per_req' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a copy with empty fields filled from
// defaults. Bool fields are not merged: unset and false are
// indistinguishable, so CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.UserName == "" {
		result.UserName = defaults.UserName
	}
	if result.ResearchPerReq == 0 {
		result.ResearchPerReq = defaults.ResearchPerReq
	}

	return result
}
