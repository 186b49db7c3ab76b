package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Source != SourceSimulated {
		t.Errorf("expected default source simulated, got %q", cfg.Source)
	}
	if cfg.FeedURL == "" {
		t.Error("expected a default feed_url")
	}
	if cfg.GetSearchKey() != "search" {
		t.Errorf("expected default search key, got %q", cfg.GetSearchKey())
	}
}

func TestLatencyDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"500ms", 500 * time.Millisecond},
		{"3s", 3 * time.Second},
		{"", 2 * time.Second},
		{"invalid", 2 * time.Second},
	}
	for _, tt := range tests {
		cfg := &Config{Latency: tt.input}
		if got := cfg.LatencyDuration(); got != tt.want {
			t.Errorf("LatencyDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `source: simulated
latency: 250ms
fail: true
search_key: query
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LatencyDuration() != 250*time.Millisecond {
		t.Errorf("expected 250ms latency, got %v", cfg.LatencyDuration())
	}
	if !cfg.Fail {
		t.Error("expected fail to be set")
	}
	if cfg.GetSearchKey() != "query" {
		t.Errorf("expected search key query, got %q", cfg.GetSearchKey())
	}
	// Defaults fill unset fields.
	if cfg.FeedURL == "" {
		t.Error("expected default feed_url to be merged in")
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != SourceSimulated {
		t.Errorf("expected defaults when config doesn't exist, got %q", cfg.Source)
	}

	// Defaults written on first run.
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	err := validate(&Config{Source: "carrier-pigeon"})
	if err == nil || !strings.Contains(err.Error(), "unknown source") {
		t.Errorf("expected unknown source error, got %v", err)
	}
}

func TestValidateFeedURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://hnrss.org/frontpage", false},
		{"http://example.com/feed", false},
		{"ftp://example.com/feed", true},
		{"", true},
	}
	for _, tt := range tests {
		err := validate(&Config{Source: SourceFeed, FeedURL: tt.url})
		if tt.wantErr && err == nil {
			t.Errorf("validate(feed_url=%q): expected error", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("validate(feed_url=%q): unexpected error %v", tt.url, err)
		}
	}
}

func TestValidateLatency(t *testing.T) {
	err := validate(&Config{Source: SourceSimulated, Latency: "soon"})
	if err == nil {
		t.Error("expected error for unparseable latency")
	}
	if err := validate(&Config{Source: SourceSimulated, Latency: "1s"}); err != nil {
		t.Errorf("unexpected error for valid latency: %v", err)
	}
}
