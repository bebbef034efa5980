// Package github implements the GitHubClient port using the go-github
// library for REST calls and direct GraphQL requests for review data.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/reviewsweeper/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// Client implements the driven.GitHubClient port.
type Client struct {
	gh         *gh.Client
	token      string // Stored for the GraphQL Authorization header.
	graphqlURL string // "https://api.github.com/graphql" in production; derived from baseURL in tests.
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with PAT auth)
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient).WithAuthToken(token)

	return &Client{
		gh:         client,
		token:      token,
		graphqlURL: "https://api.github.com/graphql",
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, token string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	// Derive graphqlURL from baseURL so httptest servers can intercept GraphQL requests.
	graphqlU := *u
	graphqlU.Path = "/graphql"

	return &Client{
		gh:         client,
		token:      token,
		graphqlURL: graphqlU.String(),
	}, nil
}

// FindPullRequestForBranch returns the number of the open pull request whose
// head is the given branch. Used when the triggering event carries a branch
// but no pull request number.
func (c *Client) FindPullRequestForBranch(ctx context.Context, owner, repo, branch string) (int, error) {
	opts := &gh.PullRequestListOptions{
		State: "open",
		Head:  owner + ":" + branch,
		ListOptions: gh.ListOptions{
			PerPage: 10,
		},
	}

	prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return 0, fmt.Errorf("listing pull requests for %s/%s head %q: %w", owner, repo, branch, err)
	}

	logRateLimit(resp, owner+"/"+repo+"/pulls", 0, len(prs))

	if len(prs) == 0 {
		return 0, fmt.Errorf("no open pull request found for %s/%s branch %q", owner, repo, branch)
	}

	return prs[0].GetNumber(), nil
}

// logRateLimit logs the GitHub API rate limit status after each REST call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
