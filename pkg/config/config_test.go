package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvURL, EnvUsername, EnvPassword} {
		// t.Setenv registers the restore; Unsetenv makes the variable truly
		// absent so dotenv values are picked up.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_AllSet(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvURL, "http://homebridge.local:8581")
	t.Setenv(EnvUsername, "admin")
	t.Setenv(EnvPassword, "secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://homebridge.local:8581" || cfg.Username != "admin" || cfg.Password != "secret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_MissingURL(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUsername, "admin")
	t.Setenv(EnvPassword, "secret")

	_, err := Load("")
	var missing *MissingVarError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVarError, got %v", err)
	}
	if missing.Var != EnvURL {
		t.Errorf("error names wrong variable: %q", missing.Var)
	}
}

func TestLoad_MissingUsername(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvURL, "http://homebridge.local:8581")
	t.Setenv(EnvPassword, "secret")

	_, err := Load("")
	var missing *MissingVarError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVarError, got %v", err)
	}
	if missing.Var != EnvUsername {
		t.Errorf("error names wrong variable: %q", missing.Var)
	}
}

func TestLoad_MissingPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvURL, "http://homebridge.local:8581")
	t.Setenv(EnvUsername, "admin")

	_, err := Load("")
	var missing *MissingVarError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVarError, got %v", err)
	}
	if missing.Var != EnvPassword {
		t.Errorf("error names wrong variable: %q", missing.Var)
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	contents := "HOMEBRIDGE_URL=http://homebridge.local:8581\nHOMEBRIDGE_USERNAME=admin\nHOMEBRIDGE_PASSWORD=secret\n"
	if err := os.WriteFile(envFile, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Username != "admin" || cfg.Password != "secret" {
		t.Errorf("unexpected config from dotenv file: %+v", cfg)
	}
}

func TestLoad_EnvWinsOverDotenvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvURL, "http://from-env:8581")
	t.Setenv(EnvUsername, "env-admin")
	t.Setenv(EnvPassword, "env-secret")

	envFile := filepath.Join(t.TempDir(), ".env")
	contents := "HOMEBRIDGE_URL=http://from-file:8581\nHOMEBRIDGE_USERNAME=file-admin\nHOMEBRIDGE_PASSWORD=file-secret\n"
	if err := os.WriteFile(envFile, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://from-env:8581" || cfg.Username != "env-admin" {
		t.Errorf("environment should win over dotenv file: %+v", cfg)
	}
}

func TestLoad_MissingDotenvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err == nil {
		t.Fatal("expected error for missing dotenv file")
	}
}
