package llm

import (
	"context"
	"testing"

	"github.com/stellarlinkco/interview-coach/internal/config"
)

type fakeProvider struct {
	name string
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	return &Response{Content: []ContentBlock{{Type: "text", Text: "ok"}}}, nil
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&fakeProvider{name: "Claude"})

	if _, ok := r.Get("claude"); !ok {
		t.Fatalf("Get(claude): not found after Register(Claude)")
	}
	if _, ok := r.Get("CLAUDE"); !ok {
		t.Fatalf("Get is not case-insensitive")
	}
	if _, ok := r.Get("openai"); ok {
		t.Fatalf("Get(openai): unexpected provider")
	}

	r.Register(nil)
	r.Register(&fakeProvider{name: "  "})
	if _, ok := r.Get(""); ok {
		t.Fatalf("Get(\"\"): unexpected provider")
	}
}

func TestNewRegistryFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.LLM.Providers = map[string]config.ProviderConfig{
		"claude": {APIKey: "k1"},
		"openai": {APIKey: "k2", Model: "gpt-4o-mini"},
	}

	r, err := NewRegistryFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewRegistryFromConfig: %v", err)
	}
	if _, ok := r.Get("claude"); !ok {
		t.Fatalf("claude not registered")
	}
	if _, ok := r.Get("openai"); !ok {
		t.Fatalf("openai not registered")
	}

	cfg.LLM.Providers["mystery"] = config.ProviderConfig{}
	if _, err := NewRegistryFromConfig(cfg); err == nil {
		t.Fatalf("unknown provider: expected error")
	}
}

func TestDefaultProviderFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.LLM.DefaultProvider = "openai"
	cfg.LLM.Providers = map[string]config.ProviderConfig{
		"openai": {APIKey: "k"},
	}

	p, err := DefaultProviderFromConfig(cfg)
	if err != nil {
		t.Fatalf("DefaultProviderFromConfig: %v", err)
	}
	if p.Name() != "openai" {
		t.Fatalf("provider %q", p.Name())
	}

	// Single configured provider wins even when the default name is absent.
	cfg.LLM.DefaultProvider = "claude"
	p, err = DefaultProviderFromConfig(cfg)
	if err != nil {
		t.Fatalf("single provider fallback: %v", err)
	}
	if p.Name() != "openai" {
		t.Fatalf("fallback provider %q", p.Name())
	}

	// No providers configured at all.
	cfg.LLM.Providers = map[string]config.ProviderConfig{}
	if _, err := DefaultProviderFromConfig(cfg); err == nil {
		t.Fatalf("no providers: expected error")
	}
}
