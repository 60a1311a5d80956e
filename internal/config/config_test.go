package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingDefaultIsFine(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.LLM.DefaultProvider != "claude" {
		t.Fatalf("default provider %q", cfg.LLM.DefaultProvider)
	}
	if cfg.LLM.Providers == nil {
		t.Fatalf("providers map not initialized")
	}
}

func TestLoadMissingDefaultPathIsFine(t *testing.T) {
	// The CLI passes DefaultPath as its flag default; a missing file there
	// is as normal as passing no path at all.
	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("Load(DefaultPath): %v", err)
	}
	if cfg.LLM.DefaultProvider != "claude" {
		t.Fatalf("default provider %q", cfg.LLM.DefaultProvider)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("Load(absent explicit path): expected error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
scoring:
  hesitation_markers: ["like", "you know"]
questions:
  fallback_source: llm
  fetch_timeout: 3000000000
llm:
  default_provider: openai
  providers:
    openai:
      api_key: test-key
      model: gpt-4o-mini
storage:
  type: sqlite
  path: /tmp/coach.db
server:
  addr: ":9090"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.Scoring.HesitationMarkers) != 2 || cfg.Scoring.HesitationMarkers[0] != "like" {
		t.Fatalf("markers %v", cfg.Scoring.HesitationMarkers)
	}
	if cfg.Questions.FallbackSource != "llm" || cfg.Questions.FetchTimeout != 3*time.Second {
		t.Fatalf("questions config %+v", cfg.Questions)
	}
	if cfg.LLM.DefaultProvider != "openai" {
		t.Fatalf("default provider %q", cfg.LLM.DefaultProvider)
	}
	if p := cfg.LLM.Providers["openai"]; p.Model != "gpt-4o-mini" {
		t.Fatalf("openai provider %+v", p)
	}
	if cfg.Storage.Type != "sqlite" || cfg.Storage.Path != "/tmp/coach.db" {
		t.Fatalf("storage %+v", cfg.Storage)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("server %+v", cfg.Server)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("llm:\n  providers:\n    claude:\n      model: claude-test\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p := cfg.LLM.Providers["claude"]
	if p.APIKey != "env-key" || p.Model != "claude-test" {
		t.Fatalf("claude provider %+v", p)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load(bad yaml): expected error")
	}
}
