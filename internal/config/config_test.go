package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"POTUI_PAGE_SIZE",
		"POTUI_SEARCH_FOLD",
		"POTUI_LOG_FILE",
		"POTUI_MEMORY_PATH",
		"POTUI_LANGUAGE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `page_size: 25
search_fold: ascii
memory_path: /tmp/potui-memory.db
language: pt_BR
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.PageSize != 25 {
		t.Fatalf("unexpected page size: %d", cfg.PageSize)
	}
	if cfg.SearchFold != "ascii" {
		t.Fatalf("unexpected search fold: %s", cfg.SearchFold)
	}
	if cfg.MemoryPath != "/tmp/potui-memory.db" {
		t.Fatalf("unexpected memory path: %s", cfg.MemoryPath)
	}
	if cfg.Language != "pt_BR" {
		t.Fatalf("unexpected language: %s", cfg.Language)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("page_size: 25\nmemory_path: /tmp/a.db\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("POTUI_PAGE_SIZE", "7")
	t.Setenv("POTUI_MEMORY_PATH", "/tmp/b.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.PageSize != 7 {
		t.Fatalf("env override lost: page size = %d", cfg.PageSize)
	}
	if cfg.MemoryPath != "/tmp/b.db" {
		t.Fatalf("env override lost: memory path = %s", cfg.MemoryPath)
	}
	if cfg.SearchFold != defaultSearchFold {
		t.Fatalf("unexpected search fold: %s", cfg.SearchFold)
	}
}

func TestValidate_SearchFold(t *testing.T) {
	cfg := Config{PageSize: 10, SearchFold: "nope", MemoryPath: "/tmp/a.db"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for search fold")
	}
}

func TestValidate_PageSize(t *testing.T) {
	cfg := Config{PageSize: 0, SearchFold: "unicode", MemoryPath: "/tmp/a.db"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for page size")
	}
}

func TestLoad_BadYAMLFails(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("page_size: [not an int\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
