package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TODOVIEW_"

// ApplyEnv overrides c from TODOVIEW_* variables, e.g. TODOVIEW_PAGE_SIZE.
// Unset or empty variables leave the field alone; unparsable numbers and
// booleans are errors.
func ApplyEnv(c *Config) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}
	var firstErr error
	num := func(name string, dst *int) {
		v, ok := lookup(name)
		if !ok {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			return
		}
		*dst = n
	}
	flag := func(name string, dst *bool) {
		v, ok := lookup(name)
		if !ok {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			return
		}
		*dst = b
	}

	str("ENDPOINT", &c.Endpoint)
	num("PAGE_SIZE", &c.PageSize)
	num("WINDOW_SIZE", &c.WindowSize)
	num("SEARCH_DEBOUNCE_MS", &c.SearchDebounceMS)
	num("FETCH_TIMEOUT_SEC", &c.FetchTimeoutSec)
	flag("SORTING", &c.Sorting)
	flag("PAGINATION", &c.Pagination)
	str("HOOKS_DIR", &c.HooksDir)
	str("SCHEMA_FILE", &c.SchemaFile)
	str("EXPORT_DIR", &c.ExportDir)
	str("LOG_FILE", &c.LogFile)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	flag("DEBUG", &c.Debug)
	return firstErr
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
