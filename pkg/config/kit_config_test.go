package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultKitConfig(t *testing.T) {
	cfg := DefaultKitConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Confetti.ParticleCount != 150 {
		t.Errorf("expected particleCount = 150, got %d", cfg.Confetti.ParticleCount)
	}
	if cfg.Confetti.Gravity != 0.3 {
		t.Errorf("expected gravity = 0.3, got %f", cfg.Confetti.Gravity)
	}
	if len(cfg.Confetti.Colors) != 6 {
		t.Errorf("expected 6 palette colors, got %d", len(cfg.Confetti.Colors))
	}
	if cfg.Notification.AutoHideSeconds != 5 {
		t.Errorf("expected autoHideSeconds = 5, got %f", cfg.Notification.AutoHideSeconds)
	}

	// 修改返回值不应影响全局调色板
	cfg.Confetti.Colors[0] = "#000000"
	if DefaultPalette[0] != "#d4af37" {
		t.Error("DefaultKitConfig must copy the default palette")
	}
}

func TestParseKitConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *KitConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
confetti:
  particleCount: 40
  gravity: 0.5
`,
			validate: func(t *testing.T, cfg *KitConfig) {
				if cfg.Confetti.ParticleCount != 40 {
					t.Errorf("expected particleCount = 40, got %d", cfg.Confetti.ParticleCount)
				}
				if cfg.Confetti.Gravity != 0.5 {
					t.Errorf("expected gravity = 0.5, got %f", cfg.Confetti.Gravity)
				}
				if cfg.Confetti.Spread != 60 {
					t.Errorf("expected default spread = 60, got %f", cfg.Confetti.Spread)
				}
				if cfg.Notification.AutoHideSeconds != 5 {
					t.Errorf("expected default autoHideSeconds = 5, got %f", cfg.Notification.AutoHideSeconds)
				}
			},
		},
		{
			name: "custom palette",
			yamlContent: `
confetti:
  colors: ["#ffffff", "#000000"]
`,
			validate: func(t *testing.T, cfg *KitConfig) {
				if len(cfg.Confetti.Colors) != 2 {
					t.Errorf("expected 2 colors, got %d", len(cfg.Confetti.Colors))
				}
			},
		},
		{
			name: "invalid size range",
			yamlContent: `
confetti:
  size:
    min: 20
    max: 10
`,
			wantErr:     true,
			errContains: "size range invalid",
		},
		{
			name: "zero particles",
			yamlContent: `
confetti:
  particleCount: 0
`,
			wantErr:     true,
			errContains: "particleCount",
		},
		{
			name: "zero gravity",
			yamlContent: `
confetti:
  gravity: 0
`,
			wantErr:     true,
			errContains: "gravity must be > 0",
		},
		{
			name: "negative gravity",
			yamlContent: `
confetti:
  gravity: -0.3
  velocityY:
    min: -20
    max: -5
`,
			wantErr:     true,
			errContains: "gravity must be > 0",
		},
		{
			name: "bad color",
			yamlContent: `
confetti:
  colors: ["gold"]
`,
			wantErr:     true,
			errContains: "not a hex color",
		},
		{
			name: "negative auto hide",
			yamlContent: `
notification:
  autoHideSeconds: -1
`,
			wantErr:     true,
			errContains: "autoHideSeconds",
		},
		{
			name:        "malformed yaml",
			yamlContent: "confetti: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseKitConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadKitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kit.yaml")
	content := `
fadeIn:
  delaySeconds: 0.25
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadKitConfig(path)
	if err != nil {
		t.Fatalf("LoadKitConfig() error: %v", err)
	}
	if cfg.FadeIn.DelaySeconds != 0.25 {
		t.Errorf("expected delaySeconds = 0.25, got %f", cfg.FadeIn.DelaySeconds)
	}
}

func TestLoadKitConfigMissingFile(t *testing.T) {
	_, err := LoadKitConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}
