package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ericfisherdev/reviewsweeper/internal/domain/model"
)

// graphqlHTTPClient is the HTTP client used for GraphQL requests.
// It enforces a 30-second timeout as a safety net alongside context cancellation.
var graphqlHTTPClient = &http.Client{Timeout: 30 * time.Second}

const reviewThreadsQuery = `query($owner: String!, $repo: String!, $pr: Int!, $cursor: String) {
	repository(owner: $owner, name: $repo) {
		pullRequest(number: $pr) {
			reviewThreads(first: 100, after: $cursor) {
				pageInfo {
					hasNextPage
					endCursor
				}
				nodes {
					id
					isResolved
					comments(first: 1) {
						nodes {
							author { login }
							pullRequestReview {
								id
								createdAt
								isMinimized
								author { login }
							}
						}
					}
				}
			}
		}
	}
}`

const reviewsQuery = `query($owner: String!, $repo: String!, $pr: Int!, $cursor: String) {
	repository(owner: $owner, name: $repo) {
		pullRequest(number: $pr) {
			reviews(first: 100, after: $cursor) {
				pageInfo {
					hasNextPage
					endCursor
				}
				nodes {
					id
					createdAt
					isMinimized
					author { login }
				}
			}
		}
	}
}`

const minimizeReviewMutation = `mutation($id: ID!) {
	minimizeComment(input: {subjectId: $id, classifier: RESOLVED}) {
		minimizedComment { isMinimized }
	}
}`

// graphqlRequest is the JSON body sent to the GitHub GraphQL API.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type actorJSON struct {
	Login string `json:"login"`
}

type pageInfoJSON struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// reviewRefJSON is the review node shape shared by the flat review list and
// a thread comment's pullRequestReview back-reference.
type reviewRefJSON struct {
	ID          string     `json:"id"`
	Author      *actorJSON `json:"author"`
	CreatedAt   time.Time  `json:"createdAt"`
	IsMinimized bool       `json:"isMinimized"`
}

type reviewThreadsResponse struct {
	Data struct {
		Repository struct {
			PullRequest struct {
				ReviewThreads struct {
					PageInfo pageInfoJSON `json:"pageInfo"`
					Nodes    []struct {
						ID         string `json:"id"`
						IsResolved bool   `json:"isResolved"`
						Comments   struct {
							Nodes []struct {
								Author            *actorJSON     `json:"author"`
								PullRequestReview *reviewRefJSON `json:"pullRequestReview"`
							} `json:"nodes"`
						} `json:"comments"`
					} `json:"nodes"`
				} `json:"reviewThreads"`
			} `json:"pullRequest"`
		} `json:"repository"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type reviewsResponse struct {
	Data struct {
		Repository struct {
			PullRequest struct {
				Reviews struct {
					PageInfo pageInfoJSON    `json:"pageInfo"`
					Nodes    []reviewRefJSON `json:"nodes"`
				} `json:"reviews"`
			} `json:"pullRequest"`
		} `json:"repository"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// minimizeResponse represents the minimal response shape for the minimize
// mutation. We only check for errors; the payload is not inspected.
type minimizeResponse struct {
	Errors []graphqlError `json:"errors"`
}

// FetchReviewThreads returns one page of review threads for a pull request.
// Each thread carries at most its first comment, which determines the
// thread's author and parent review.
func (c *Client) FetchReviewThreads(ctx context.Context, owner, repo string, prNumber int, cursor string) (model.Page[model.Thread], error) {
	var gqlResp reviewThreadsResponse
	if err := c.postGraphQL(ctx, reviewThreadsQuery, prVariables(owner, repo, prNumber, cursor), &gqlResp); err != nil {
		return model.Page[model.Thread]{}, fmt.Errorf("fetching review threads for %s/%s#%d: %w", owner, repo, prNumber, err)
	}
	if len(gqlResp.Errors) > 0 {
		return model.Page[model.Thread]{}, fmt.Errorf("fetching review threads for %s/%s#%d: %s", owner, repo, prNumber, gqlResp.Errors[0].Message)
	}

	conn := gqlResp.Data.Repository.PullRequest.ReviewThreads
	page := model.Page[model.Thread]{
		Nodes: make([]model.Thread, 0, len(conn.Nodes)),
		Info: model.PageInfo{
			HasNextPage: conn.PageInfo.HasNextPage,
			EndCursor:   conn.PageInfo.EndCursor,
		},
	}

	for _, n := range conn.Nodes {
		thread := model.Thread{ID: n.ID, IsResolved: n.IsResolved}
		for _, cm := range n.Comments.Nodes {
			comment := model.Comment{}
			if cm.Author != nil {
				comment.Author = cm.Author.Login
			}
			if cm.PullRequestReview != nil {
				ref := mapReviewRef(*cm.PullRequestReview)
				comment.Review = &ref
			}
			thread.Comments = append(thread.Comments, comment)
		}
		page.Nodes = append(page.Nodes, thread)
	}

	return page, nil
}

// FetchReviews returns one page of the flat review list for a pull request.
// Reviews by deleted accounts come back with an empty Author.
func (c *Client) FetchReviews(ctx context.Context, owner, repo string, prNumber int, cursor string) (model.Page[model.ReviewRef], error) {
	var gqlResp reviewsResponse
	if err := c.postGraphQL(ctx, reviewsQuery, prVariables(owner, repo, prNumber, cursor), &gqlResp); err != nil {
		return model.Page[model.ReviewRef]{}, fmt.Errorf("fetching reviews for %s/%s#%d: %w", owner, repo, prNumber, err)
	}
	if len(gqlResp.Errors) > 0 {
		return model.Page[model.ReviewRef]{}, fmt.Errorf("fetching reviews for %s/%s#%d: %s", owner, repo, prNumber, gqlResp.Errors[0].Message)
	}

	conn := gqlResp.Data.Repository.PullRequest.Reviews
	page := model.Page[model.ReviewRef]{
		Nodes: make([]model.ReviewRef, 0, len(conn.Nodes)),
		Info: model.PageInfo{
			HasNextPage: conn.PageInfo.HasNextPage,
			EndCursor:   conn.PageInfo.EndCursor,
		},
	}
	for _, n := range conn.Nodes {
		page.Nodes = append(page.Nodes, mapReviewRef(n))
	}

	return page, nil
}

// MinimizeReview hides a review with the "resolved" classifier.
// reviewID is the review's GraphQL node ID.
func (c *Client) MinimizeReview(ctx context.Context, reviewID string) error {
	var gqlResp minimizeResponse
	if err := c.postGraphQL(ctx, minimizeReviewMutation, map[string]any{"id": reviewID}, &gqlResp); err != nil {
		return fmt.Errorf("minimizing review %s: %w", reviewID, err)
	}
	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("minimizing review %s: %s", reviewID, gqlResp.Errors[0].Message)
	}
	return nil
}

// postGraphQL issues a single GraphQL request and decodes the response into out.
func (c *Client) postGraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	bodyBytes, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshaling graphql request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("creating graphql request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("bearer %s", c.token))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := graphqlHTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql request: HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding graphql response: %w", err)
	}
	return nil
}

// prVariables builds the shared variable set for per-PR queries. The cursor
// is omitted for the first page so the API sees a null `after`.
func prVariables(owner, repo string, prNumber int, cursor string) map[string]any {
	vars := map[string]any{
		"owner": owner,
		"repo":  repo,
		"pr":    prNumber,
	}
	if cursor != "" {
		vars["cursor"] = cursor
	}
	return vars
}

// mapReviewRef converts a GraphQL review node to a domain model ReviewRef.
func mapReviewRef(r reviewRefJSON) model.ReviewRef {
	ref := model.ReviewRef{
		ID:          r.ID,
		SubmittedAt: r.CreatedAt,
		IsMinimized: r.IsMinimized,
	}
	if r.Author != nil {
		ref.Author = r.Author.Login
	}
	return ref
}
