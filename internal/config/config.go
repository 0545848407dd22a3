package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for a config file when none is given.
const DefaultPath = ".release-notes.yml"

// Config holds the policy knobs that vary between CI setups. Every field
// has a default, can be set in the YAML file, and can be overridden by a
// RELEASE_NOTES_* environment variable.
type Config struct {
	HistoryPath    string `yaml:"history_path"`     // where the rolling history JSON lives
	HistoryLimit   int    `yaml:"history_limit"`    // max builds kept in the history
	InsertPolicy   string `yaml:"insert_policy"`    // "prepend" or "append"
	Classification string `yaml:"classification"`   // "substring" or "prefix"
	Workflow       string `yaml:"workflow"`         // workflow whose runs anchor daily ranges
	Mainline       string `yaml:"mainline"`         // integration branch
	Development    string `yaml:"development"`      // secondary long-lived branch
	NotesSizeLimit int    `yaml:"notes_size_limit"` // max inline release description length
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HistoryPath:    "release-notes.json",
		HistoryLimit:   50,
		InsertPolicy:   "prepend",
		Classification: "substring",
		Workflow:       "build",
		Mainline:       "main",
		Development:    "develop",
		NotesSizeLimit: 125000,
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnv()

	if cfg.HistoryLimit <= 0 {
		return Config{}, fmt.Errorf("history_limit must be positive, got %d", cfg.HistoryLimit)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&c.HistoryPath, "RELEASE_NOTES_FILE")
	setString(&c.InsertPolicy, "RELEASE_NOTES_INSERT_POLICY")
	setString(&c.Classification, "RELEASE_NOTES_CLASSIFICATION")
	setString(&c.Workflow, "RELEASE_NOTES_WORKFLOW")
	setString(&c.Mainline, "RELEASE_NOTES_MAINLINE")
	setString(&c.Development, "RELEASE_NOTES_DEVELOPMENT")

	if v := os.Getenv("RELEASE_NOTES_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HistoryLimit = n
		}
	}
}
