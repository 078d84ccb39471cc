package config

import (
	"testing"
)

func TestEnsureSecrets_GeneratesMissingValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	if err := cfg.ensureSecrets(); err != nil {
		t.Fatalf("ensureSecrets() error = %v", err)
	}

	if cfg.Idempotency.HMACSecret == "" {
		t.Fatal("idempotency hmac secret should be auto-generated")
	}
	// 32 random bytes hex-encoded -> 64 chars.
	if len(cfg.Idempotency.HMACSecret) != 64 {
		t.Fatalf("idempotency hmac secret length = %d, want 64", len(cfg.Idempotency.HMACSecret))
	}
}

func TestEnsureSecrets_PreservesProvidedValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Idempotency: IdempotencyConfig{
			HMACSecret: "keep-existing-hmac-secret",
		},
	}

	if err := cfg.ensureSecrets(); err != nil {
		t.Fatalf("ensureSecrets() error = %v", err)
	}

	if got := cfg.Idempotency.HMACSecret; got != "keep-existing-hmac-secret" {
		t.Fatalf("idempotency hmac secret changed unexpectedly: %q", got)
	}
}

func TestConfigValidate_RejectsShortHMACSecret(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Idempotency: IdempotencyConfig{HMACSecret: "short"},
		Lease:       LeaseConfig{Backend: "durable"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error for short hmac secret, got nil")
	}
}

func TestConfigValidate_AcceptsValidConfig(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Idempotency: IdempotencyConfig{HMACSecret: "0123456789abcdef0123456789abcdef"},
		Lease:       LeaseConfig{Backend: "durable"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error = %v", err)
	}
}
