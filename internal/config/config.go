// Package config loads the sweeper configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the sweeper needs for one run. Owner and Repo are
// split out of GITHUB_REPOSITORY; PRNumber is 0 unless set explicitly, in
// which case it overrides event-based resolution.
type Config struct {
	Token     string
	Owner     string
	Repo      string
	PRNumber  int
	Allowlist []string
	EventName string
	EventPath string
	LogLevel  string
}

// Load reads configuration from environment variables and returns a
// validated Config. GITHUB_TOKEN and GITHUB_REPOSITORY are required; the
// GITHUB_EVENT_* variables are provided by the Actions runner and are only
// needed when REVIEWSWEEPER_PR_NUMBER is not set.
// REVIEWSWEEPER_ALLOWLIST is a comma-separated list of author logins;
// entries are trimmed and empty entries discarded.
func Load() (*Config, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is required")
	}

	repoFullName := os.Getenv("GITHUB_REPOSITORY")
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, fmt.Errorf("GITHUB_REPOSITORY: %w", err)
	}

	prNumber := 0
	if v, ok := os.LookupEnv("REVIEWSWEEPER_PR_NUMBER"); ok && v != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("REVIEWSWEEPER_PR_NUMBER has invalid value %q: expected a positive integer", v)
		}
		prNumber = parsed
	}

	var allowlist []string
	if v, ok := os.LookupEnv("REVIEWSWEEPER_ALLOWLIST"); ok && v != "" {
		for _, login := range strings.Split(v, ",") {
			login = strings.TrimSpace(login)
			if login != "" {
				allowlist = append(allowlist, login)
			}
		}
	}
	if allowlist == nil {
		allowlist = []string{}
	}

	return &Config{
		Token:     token,
		Owner:     owner,
		Repo:      repo,
		PRNumber:  prNumber,
		Allowlist: allowlist,
		EventName: os.Getenv("GITHUB_EVENT_NAME"),
		EventPath: os.Getenv("GITHUB_EVENT_PATH"),
		LogLevel:  os.Getenv("REVIEWSWEEPER_LOG_LEVEL"),
	}, nil
}

// splitRepo splits a "owner/repo" string into its two components.
func splitRepo(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo name %q: expected owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}
