package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Stats.HappyClients != 500 || cfg.Stats.YearsExperience != 15 ||
		cfg.Stats.ProjectsCompleted != 1000 || cfg.Stats.OnTimeDelivery != 98 {
		t.Errorf("unexpected default stats: %+v", cfg.Stats)
	}
	if cfg.RateLimit.IntakeWindow != time.Minute {
		t.Errorf("expected one minute intake window, got %s", cfg.RateLimit.IntakeWindow)
	}
	if cfg.Server.TrustProxy {
		t.Error("proxy headers should not be trusted by default")
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS origin, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://sarita.example, https://admin.sarita.example ,")
	t.Setenv("STATS_HAPPY_CLIENTS", "750")
	t.Setenv("RATE_LIMIT_INTAKE_WINDOW", "30s")
	t.Setenv("TRUST_PROXY", "true")

	cfg := Load()

	if cfg.IsDevelopment() {
		t.Error("production env should not report development")
	}
	want := []string{"https://sarita.example", "https://admin.sarita.example"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
	for i := range want {
		if cfg.CORS.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: expected %q, got %q", i, want[i], cfg.CORS.AllowedOrigins[i])
		}
	}
	if !cfg.Server.TrustProxy {
		t.Error("expected TRUST_PROXY to enable proxy headers")
	}
	if cfg.Stats.HappyClients != 750 {
		t.Errorf("expected 750 happy clients, got %d", cfg.Stats.HappyClients)
	}
	if cfg.RateLimit.IntakeWindow != 30*time.Second {
		t.Errorf("expected 30s window, got %s", cfg.RateLimit.IntakeWindow)
	}
}
