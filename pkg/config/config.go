/*
Package config manages TOML config for the jobserve indexer and service.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/jobserve/jobserve/internal/utils"
	"github.com/jobserve/jobserve/pkg/corpus"
)

// Config holds the entire config structure
type Config struct {
	Normalize NormalizeConfig `toml:"normalize"`
	Index     IndexConfig     `toml:"index"`
	Server    ServerConfig    `toml:"server"`
}

// NormalizeConfig holds the word normalization policy. Every knob is
// explicit here so the core never falls back to a hidden default.
type NormalizeConfig struct {
	AlphabetExtras  string   `toml:"alphabet_extras"`
	MinWordLength   int      `toml:"min_word_length"`
	MinPrefixLength int      `toml:"min_prefix_length"`
	StopTokens      []string `toml:"stop_tokens"`
}

// IndexConfig names the persisted artifacts inside the data directory.
type IndexConfig struct {
	ArtifactName string `toml:"artifact_name"`
	FreqsName    string `toml:"freqs_name"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	DefaultLimit int  `toml:"default_limit"`
	MinPrefix    int  `toml:"min_prefix"`
	MaxPrefix    int  `toml:"max_prefix"`
	EnableFilter bool `toml:"enable_filter"`
}

// DefaultConfig returns a Config with default values.
//
// The normalization defaults mirror the validated corpus behavior: words
// shorter than 3 runes are dropped, prefixes start at length 1, and the
// gender marker tokens common in job ads are stripped. Both historical
// variants of the minimum lengths stay reachable through config.
func DefaultConfig() *Config {
	return &Config{
		Normalize: NormalizeConfig{
			AlphabetExtras:  "äöüàâçéèêëîïôû",
			MinWordLength:   3,
			MinPrefixLength: 1,
			StopTokens:      []string{"mw", "wm"},
		},
		Index: IndexConfig{
			ArtifactName: "prefix_index.json",
			FreqsName:    "word_freqs.json",
		},
		Server: ServerConfig{
			MaxLimit:     64,
			DefaultLimit: 10,
			MinPrefix:    1,
			MaxPrefix:    60,
			EnableFilter: true,
		},
	}
}

// Policy converts the normalization section into the corpus policy.
func (c *Config) Policy() corpus.Policy {
	return corpus.Policy{
		AlphabetExtras:  c.Normalize.AlphabetExtras,
		MinWordLength:   c.Normalize.MinWordLength,
		MinPrefixLength: c.Normalize.MinPrefixLength,
		StopTokens:      c.Normalize.StopTokens,
	}
}

// IndexPath returns the artifact path inside a data directory.
func (c *Config) IndexPath(dataDir string) string {
	return filepath.Join(dataDir, c.Index.ArtifactName)
}

// FreqsPath returns the frequency sidecar path inside a data directory.
func (c *Config) FreqsPath(dataDir string) string {
	return filepath.Join(dataDir, c.Index.FreqsName)
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
