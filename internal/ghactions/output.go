// Package ghactions integrates the sweeper with the GitHub Actions runner:
// reading the triggering event payload and writing step outputs.
package ghactions

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// WriteOutputs appends step outputs to the GITHUB_OUTPUT file when available.
// Outside a runner (no GITHUB_OUTPUT) it is a no-op.
func WriteOutputs(values map[string]string) error {
	path := strings.TrimSpace(os.Getenv("GITHUB_OUTPUT"))
	if path == "" {
		return nil
	}
	if len(values) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, sanitize(values[key])); err != nil {
			return err
		}
	}
	return nil
}

// sanitize escapes newlines so a value cannot break out of its output line.
func sanitize(value string) string {
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "\r", "%0D")
	value = strings.ReplaceAll(value, "\n", "%0A")
	return value
}
