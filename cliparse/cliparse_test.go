// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

// setRequired sets the variables ParseFlags cannot do without
func setRequired(t *testing.T) {
	t.Setenv("ADMIN_IDENTITY", "0xadmin")
	t.Setenv("IDENTITY_SALT", "test-salt")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != "postgres" {
		t.Errorf("expected postgres store, got %q", cfg.StoreType)
	}
	if cfg.AdminIdentity != "0xadmin" {
		t.Errorf("expected admin 0xadmin, got %q", cfg.AdminIdentity)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_IDENTITY", "0xenv")

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "sqlite", "-d", "file:test.db", "-admin", "0xcli", "-identity-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminIdentity != "0xcli" {
		t.Errorf("CLI should override env: expected 0xcli, got %q", cfg.AdminIdentity)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("STORE_TYPE", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.StoreType != "memory" {
		t.Errorf("expected memory store, got %q", cfg.StoreType)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing admin", map[string]string{"ADMIN_IDENTITY": ""}, nil},
		{"missing salt", map[string]string{"IDENTITY_SALT": ""}, nil},
		{"bad port env", map[string]string{"PORT": "http"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"unknown store", nil, []string{"-t", "mongo"}},
		{"durable store without url", map[string]string{"DATABASE_URL": ""}, []string{"-t", "bolt"}},
		{"unknown flag", nil, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv("PORT", "")
			t.Setenv("STORE_TYPE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ADMIN_IDENTITY=0xfromfile\nIDENTITY_SALT=file-salt\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Existing variables are not overwritten
	t.Setenv("ADMIN_IDENTITY", "0xfromenv")
	t.Setenv("IDENTITY_SALT", "")
	os.Unsetenv("IDENTITY_SALT")

	if err := LoadEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("ADMIN_IDENTITY"); got != "0xfromenv" {
		t.Errorf("expected env to win, got %q", got)
	}
	if got := os.Getenv("IDENTITY_SALT"); got != "file-salt" {
		t.Errorf("expected salt from file, got %q", got)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
