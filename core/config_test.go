package core

import (
	"strings"
	"testing"
)

func TestNewConfig_defaults(t *testing.T) {
	t.Setenv("ENV", "DEV")

	conf := NewConfig()

	if !conf.Debug {
		t.Error("Debug should default to true in DEV")
	}
	if conf.SecretKey == "" {
		t.Error("SecretKey should fall back to a local value in debug mode")
	}
	if conf.Server.Port != 8000 {
		t.Errorf("Server.Port = %v, want 8000", conf.Server.Port)
	}
	// the chat completions route lives under /v1 at OpenAI
	if conf.Completion.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("Completion.BaseURL = %v, want https://api.openai.com/v1", conf.Completion.BaseURL)
	}
	if strings.HasSuffix(conf.Completion.BaseURL, "/") {
		t.Errorf("Completion.BaseURL = %v, trailing slash should be trimmed", conf.Completion.BaseURL)
	}
}
