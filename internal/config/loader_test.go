package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoader_Load(t *testing.T) {
	unsetEnv(t)
	t.Setenv("TODO_STORE_BACKEND", "sqlite")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("Store.Backend = %q, want sqlite", cfg.Store.Backend)
	}
}

func TestLoader_Load_InvalidEnvironment(t *testing.T) {
	unsetEnv(t)
	t.Setenv("TODO_STORE_BACKEND", "redis")

	if _, err := NewLoader().Load(); err == nil {
		t.Error("Load() expected error for invalid backend")
	}
}

func TestLoader_Load_MalformedEnvironment(t *testing.T) {
	unsetEnv(t)
	t.Setenv("TODO_STORE_QUERY_TIMEOUT", "fast")

	_, err := NewLoader().Load()
	if err == nil {
		t.Fatal("Load() expected error for malformed TODO_STORE_QUERY_TIMEOUT")
	}
	if !strings.Contains(err.Error(), "TODO_STORE_QUERY_TIMEOUT") {
		t.Errorf("Load() error = %v, want it to name the variable", err)
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	unsetEnv(t)
	t.Setenv("TODO_STORE_BACKEND", "sqlite")
	t.Setenv("TODO_DISPLAY_PROMPT", "env> ")

	backend := BackendMemory
	timeout := time.Second
	banner := false
	quiet := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		Backend:      &backend,
		QueryTimeout: &timeout,
		Banner:       &banner,
		Quiet:        &quiet,
	})
	if err != nil {
		t.Fatalf("LoadWithOverrides() error = %v", err)
	}

	if cfg.Store.Backend != BackendMemory {
		t.Errorf("Store.Backend = %q, flag should win over environment", cfg.Store.Backend)
	}
	if cfg.Store.QueryTimeout != time.Second {
		t.Errorf("Store.QueryTimeout = %v, want 1s", cfg.Store.QueryTimeout)
	}
	if cfg.Display.Prompt != "env> " {
		t.Errorf("Display.Prompt = %q, nil override should keep environment value", cfg.Display.Prompt)
	}
	if cfg.Display.Banner {
		t.Error("Display.Banner = true, want false")
	}
	if !cfg.Application.Quiet {
		t.Error("Application.Quiet = false, want true")
	}
}

func TestLoader_LoadWithOverrides_Revalidates(t *testing.T) {
	unsetEnv(t)

	timeout := time.Duration(0)
	if _, err := NewLoader().LoadWithOverrides(&ConfigOverrides{QueryTimeout: &timeout}); err == nil {
		t.Error("LoadWithOverrides() expected error for zero timeout")
	}

	cfg, err := NewLoader().LoadWithOverrides(nil)
	if err != nil {
		t.Fatalf("LoadWithOverrides(nil) error = %v", err)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Errorf("Store.Backend = %q, want default", cfg.Store.Backend)
	}
}
