package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPullRequestForBranch(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/owner/repo/pulls", r.URL.Path)
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		assert.Equal(t, "owner:feature-x", r.URL.Query().Get("head"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"number": 42, "state": "open"},
		})
	})

	client := newTestClient(t, handler)
	number, err := client.FindPullRequestForBranch(context.Background(), "owner", "repo", "feature-x")

	require.NoError(t, err)
	assert.Equal(t, 42, number)
}

func TestFindPullRequestForBranch_NoneOpen(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{})
	})

	client := newTestClient(t, handler)
	_, err := client.FindPullRequestForBranch(context.Background(), "owner", "repo", "feature-x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no open pull request")
}

func TestFindPullRequestForBranch_APIError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	client := newTestClient(t, handler)
	_, err := client.FindPullRequestForBranch(context.Background(), "owner", "repo", "feature-x")

	require.Error(t, err)
}
