package config

import "testing"

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr == "" {
		t.Fatalf("expected a default server address")
	}
	if cfg.Mongo.URI == "" {
		t.Fatalf("expected a default mongo uri")
	}
	if cfg.Mongo.DBName == "" {
		t.Fatalf("expected a default db name")
	}
	if cfg.JWTSecret != "test-secret" {
		t.Fatalf("expected secret from env, got %q", cfg.JWTSecret)
	}
}

func TestLoadOverridesAddrFromPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8081")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8081" {
		t.Fatalf("expected :8081, got %q", cfg.Server.Addr)
	}
}
