package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	Scoring   ScoringConfig   `yaml:"scoring"`
	Questions QuestionsConfig `yaml:"questions"`
	LLM       LLMConfig       `yaml:"llm"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
}

type ScoringConfig struct {
	// HesitationMarkers overrides the built-in filler phrase list.
	HesitationMarkers []string `yaml:"hesitation_markers,omitempty"`
}

type QuestionsConfig struct {
	// BankPath points at a YAML bank file; empty selects the embedded banks.
	BankPath string `yaml:"bank_path,omitempty"`
	// FallbackSource selects how uncurated subjects get questions:
	// "web" (default) or "llm" (generated, with web as backstop).
	FallbackSource string        `yaml:"fallback_source,omitempty"`
	FetchBaseURL   string        `yaml:"fetch_base_url,omitempty"`
	FetchUserAgent string        `yaml:"fetch_user_agent,omitempty"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout,omitempty"`
}

type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider,omitempty"`
	Providers       map[string]ProviderConfig `yaml:"providers,omitempty"`
}

type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

type StorageConfig struct {
	Type string `yaml:"type,omitempty"` // "memory" (default) or "sqlite"
	Path string `yaml:"path,omitempty"` // SQLite file path
}

type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

func Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	explicit := path != "" && path != DefaultPath
	if path == "" {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			// Running without a config file is normal; defaults cover everything.
			return withEnvOverrides(&Config{}), nil
		}
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return withEnvOverrides(&cfg), nil
}

func withEnvOverrides(cfg *Config) *Config {
	if cfg.LLM.Providers == nil {
		cfg.LLM.Providers = make(map[string]ProviderConfig)
	}
	if strings.TrimSpace(cfg.LLM.DefaultProvider) == "" {
		cfg.LLM.DefaultProvider = "claude"
	}

	if v := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); v != "" {
		p := cfg.LLM.Providers["claude"]
		p.APIKey = v
		cfg.LLM.Providers["claude"] = p
	} else if v := strings.TrimSpace(os.Getenv("ANTHROPIC_AUTH_TOKEN")); v != "" {
		p := cfg.LLM.Providers["claude"]
		p.APIKey = v
		cfg.LLM.Providers["claude"] = p
	}

	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		p := cfg.LLM.Providers["openai"]
		p.APIKey = v
		cfg.LLM.Providers["openai"] = p
	}

	return cfg
}
