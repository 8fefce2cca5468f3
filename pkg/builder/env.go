package builder

import (
	"os"
	"strconv"
	"strings"
)

// EnvOr reads key from the process environment, stripping surrounding quotes
// and whitespace, and returns def when the variable is unset or blank. The
// example programs use it to choose a log level at startup.
func EnvOr(key, def string) string {
	value := strings.Trim(os.Getenv(key), `"`)
	if value = strings.TrimSpace(value); value == "" {
		return def
	}
	return value
}

// EnvIntOr is EnvOr for integer values; unset, blank, and unparsable values
// all fall back to def.
func EnvIntOr(key string, def int) int {
	value := EnvOr(key, "")
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
