package domain_test

import (
	"testing"
	"time"

	"github.com/revu-dev/revu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, 800*time.Millisecond, cfg.Delay())
	assert.Equal(t, 10, cfg.RulesChecked)
	assert.Equal(t, domain.FailOnNone, cfg.FailOn)
	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, "*", cfg.Server.AllowOrigin)
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfig_ExtensionsAreCopied(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Extensions[0] = ".py"
	assert.Equal(t, ".js", domain.DefaultExtensions[0])
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{"zero delay", func(c *domain.Config) { c.DelayMs = 0 }, ""},
		{"negative delay", func(c *domain.Config) { c.DelayMs = -1 }, "delay_ms"},
		{"huge delay", func(c *domain.Config) { c.DelayMs = 120_000 }, "delay_ms"},
		{"zero rules", func(c *domain.Config) { c.RulesChecked = 0 }, "rules_checked"},
		{"bad extension", func(c *domain.Config) { c.Extensions = []string{"js"} }, "extensions[0]"},
		{"unknown fail_on", func(c *domain.Config) { c.FailOn = "always" }, "fail_on"},
		{"unknown log level", func(c *domain.Config) { c.LogLevel = "verbose" }, "log_level"},
		{"empty addr", func(c *domain.Config) { c.Server.Addr = "" }, "server.addr"},
		{"zero body limit", func(c *domain.Config) { c.Server.MaxBodyBytes = 0 }, "server.max_body_bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_HasExtension(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.True(t, cfg.HasExtension("src/app.tsx"))
	assert.True(t, cfg.HasExtension("lib/index.mjs"))
	assert.False(t, cfg.HasExtension("main.go"))
	assert.False(t, cfg.HasExtension("README.md"))
}

func TestHasExtension_CustomList(t *testing.T) {
	exts := []string{".vue", ".svelte"}
	assert.True(t, domain.HasExtension("App.vue", exts))
	assert.True(t, domain.HasExtension("/abs/Widget.svelte", exts))
	assert.False(t, domain.HasExtension("app.js", exts))
	assert.False(t, domain.HasExtension("app.js", nil))
}
