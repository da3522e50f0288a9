package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "AWS_REGION", "PRESIGN_TTL_SECONDS", "MAIL_MOCK", "DOCUMENT_CATALOG_PATH", "DOCUMENTS_BUCKET"} {
		t.Setenv(k, "")
	}

	env := Load()
	if env.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", env.Port)
	}
	if env.Region != "us-east-1" {
		t.Fatalf("expected default region, got %q", env.Region)
	}
	if env.PresignTTL != 5*time.Minute {
		t.Fatalf("expected 5m ttl, got %v", env.PresignTTL)
	}
	if env.MailMock {
		t.Fatalf("expected mail mock disabled")
	}
	if env.CatalogPath != "configs/document_types.toml" {
		t.Fatalf("unexpected catalog path %q", env.CatalogPath)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PRESIGN_TTL_SECONDS", "60")
	t.Setenv("MAIL_MOCK", " Yes ")
	t.Setenv("DOCUMENTS_BUCKET", "portail-docs")

	env := Load()
	if env.Port != 9090 || env.PresignTTL != time.Minute || !env.MailMock || env.DocumentsBucket != "portail-docs" {
		t.Fatalf("unexpected env %+v", env)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("PRESIGN_TTL_SECONDS", "-5")

	env := Load()
	if env.Port != 8080 || env.PresignTTL != 5*time.Minute {
		t.Fatalf("expected defaults, got port=%d ttl=%v", env.Port, env.PresignTTL)
	}
}
