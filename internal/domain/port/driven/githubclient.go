// Package driven defines the outbound ports of the application core.
package driven

import (
	"context"

	"github.com/ericfisherdev/reviewsweeper/internal/domain/model"
)

// GitHubClient defines the driven port for interacting with the GitHub API.
// Fetch methods return a single page at a time; the application layer owns
// the pagination loop. An empty cursor requests the first page.
type GitHubClient interface {
	// FetchReviewThreads returns one page of review threads for a pull request.
	FetchReviewThreads(ctx context.Context, owner, repo string, prNumber int, cursor string) (model.Page[model.Thread], error)
	// FetchReviews returns one page of the flat review list for a pull
	// request, including reviews that produced no inline threads.
	FetchReviews(ctx context.Context, owner, repo string, prNumber int, cursor string) (model.Page[model.ReviewRef], error)
	// MinimizeReview hides a review with the "resolved" classifier.
	// reviewID is the review's GraphQL node ID.
	MinimizeReview(ctx context.Context, reviewID string) error
	// FindPullRequestForBranch returns the number of the open pull request
	// whose head is the given branch, or an error when none exists.
	FindPullRequestForBranch(ctx context.Context, owner, repo, branch string) (int, error)
}
