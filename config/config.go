package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultFileName is the configuration file looked up when no path is given.
const DefaultFileName = ".gitcommits.json"

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig `json:"server"`
	Query   QueryConfig  `json:"query"`
	Filters FilterConfig `json:"filters"`
}

// ServerConfig holds the identity advertised to MCP clients.
type ServerConfig struct {
	Name         string `json:"name"`         // Default: "GitCommitRetriever"
	Version      string `json:"version"`      // Default: "1.0.0"
	Instructions string `json:"instructions"` // Sent during initialization
}

// QueryConfig holds defaults for commit queries.
type QueryConfig struct {
	DefaultMaxCount int `json:"defaultMaxCount"` // Default: 50
	MaxCountLimit   int `json:"maxCountLimit"`   // 0 means no cap
}

// EffectiveMaxCount applies the default and the cap to a requested max count.
func (q QueryConfig) EffectiveMaxCount(requested int) int {
	n := requested
	if n <= 0 {
		n = q.DefaultMaxCount
	}
	if n <= 0 {
		n = 50
	}
	if q.MaxCountLimit > 0 && n > q.MaxCountLimit {
		n = q.MaxCountLimit
	}
	return n
}

// FilterConfig holds file path filtering options applied to every query.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:         "GitCommitRetriever",
			Version:      "1.0.0",
			Instructions: "A tool to retrieve git commit history from a repository.",
		},
		Query: QueryConfig{
			DefaultMaxCount: 50,
			MaxCountLimit:   0,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{DefaultFileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, DefaultFileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, DefaultFileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
