// Package config holds todoview settings. Values are layered as defaults,
// then the config file (JSON, or TOML for a .toml path), then TODOVIEW_*
// environment variables; the command applies flags last.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"todoview/internal/pagination"
	"todoview/internal/source"
)

type Config struct {
	Endpoint         string `json:"endpoint" toml:"endpoint"`
	PageSize         int    `json:"page_size" toml:"page_size"`
	WindowSize       int    `json:"window_size" toml:"window_size"`
	SearchDebounceMS int    `json:"search_debounce_ms" toml:"search_debounce_ms"`
	FetchTimeoutSec  int    `json:"fetch_timeout_sec" toml:"fetch_timeout_sec"` // 0 = no timeout
	Sorting          bool   `json:"sorting" toml:"sorting"`
	Pagination       bool   `json:"pagination" toml:"pagination"`
	HooksDir         string `json:"hooks_dir" toml:"hooks_dir"`
	SchemaFile       string `json:"schema_file" toml:"schema_file"` // empty = built-in schema
	ExportDir        string `json:"export_dir" toml:"export_dir"`   // empty = current directory
	LogFile          string `json:"log_file" toml:"log_file"`
	LogLevel         string `json:"log_level" toml:"log_level"`
	LogFormat        string `json:"log_format" toml:"log_format"`
	Debug            bool   `json:"debug" toml:"debug"`
}

func Default() Config {
	return Config{
		Endpoint:         source.DefaultEndpoint,
		PageSize:         pagination.DefaultPageSize,
		WindowSize:       pagination.DefaultWindowSize,
		SearchDebounceMS: 500,
		Sorting:          true,
		Pagination:       true,
		HooksDir:         filepath.Join(UserHome(), ".config", "todoview", "hooks"),
		LogFile:          filepath.Join(UserHome(), ".config", "todoview", "logs", "todoview.log"),
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// DefaultPath is where the command looks for a config file.
func DefaultPath() string {
	return filepath.Join(UserHome(), ".config", "todoview.json")
}

// Load merges the file at path over out. Keys missing from the file keep
// their current value. A missing file is returned as-is so callers can check
// os.IsNotExist.
func Load(path string, out *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	c := *out
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, &c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	*out = c
	return nil
}

// Save writes c to path, as TOML for a .toml path and indented JSON otherwise.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(c)
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate rejects settings the program cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	if c.WindowSize <= 0 {
		errs = append(errs, fmt.Errorf("window_size must be positive, got %d", c.WindowSize))
	}
	if c.SearchDebounceMS < 0 {
		errs = append(errs, fmt.Errorf("search_debounce_ms must not be negative, got %d", c.SearchDebounceMS))
	}
	if c.FetchTimeoutSec < 0 {
		errs = append(errs, fmt.Errorf("fetch_timeout_sec must not be negative, got %d", c.FetchTimeoutSec))
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json", "logfmt":
	default:
		errs = append(errs, fmt.Errorf("unknown log_format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// DebounceDelay is the search quiet period.
func (c Config) DebounceDelay() time.Duration {
	return time.Duration(c.SearchDebounceMS) * time.Millisecond
}

// FetchTimeout is zero when no timeout is configured.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

func UserHome() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	if runtime.GOOS == "windows" {
		if h := os.Getenv("USERPROFILE"); h != "" {
			return h
		}
	}
	return "."
}

// EnsureDir creates path and its parents.
func EnsureDir(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}
