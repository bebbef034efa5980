package application

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ericfisherdev/reviewsweeper/internal/domain/model"
	"github.com/ericfisherdev/reviewsweeper/internal/domain/port/driven"
)

// SweepResult reports what a single sweep pass did.
type SweepResult struct {
	Candidates []string // Review node IDs selected for minimization.
	Minimized  int
	Failed     int
}

// SweepService runs one pass over a pull request: fetch its review state,
// decide which stale reviews to hide, and issue the minimize mutations.
// It depends only on the GitHubClient port.
type SweepService struct {
	gh driven.GitHubClient
}

// NewSweepService creates a SweepService backed by the given client.
func NewSweepService(gh driven.GitHubClient) *SweepService {
	return &SweepService{gh: gh}
}

// Sweep fetches review threads and the flat review list to exhaustion,
// assembles the canonical review collection, and minimizes every eligible
// review. A fetch failure aborts the run; an individual minimize failure is
// logged at warn level, counted, and does not stop the remaining mutations.
func (s *SweepService) Sweep(ctx context.Context, owner, repo string, prNumber int, allowlist []string) (SweepResult, error) {
	var (
		threads []model.Thread
		bare    []model.ReviewRef
	)

	// The two resources paginate independently; drain both before assembly.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		threads, err = fetchAll(gctx, func(ctx context.Context, cursor string) (model.Page[model.Thread], error) {
			return s.gh.FetchReviewThreads(ctx, owner, repo, prNumber, cursor)
		})
		return err
	})
	g.Go(func() error {
		var err error
		bare, err = fetchAll(gctx, func(ctx context.Context, cursor string) (model.Page[model.ReviewRef], error) {
			return s.gh.FetchReviews(ctx, owner, repo, prNumber, cursor)
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return SweepResult{}, err
	}

	reviews := BuildReviewList(threads, bare)
	candidates := FindReviewsToMinimize(reviews, allowlist)

	slog.Info("sweep decision",
		"owner", owner,
		"repo", repo,
		"pr", prNumber,
		"threads", len(threads),
		"reviews", len(reviews),
		"candidates", len(candidates),
	)

	result := SweepResult{Candidates: candidates}
	for _, id := range candidates {
		if err := s.gh.MinimizeReview(ctx, id); err != nil {
			slog.Warn("failed to minimize review", "review_id", id, "error", err)
			result.Failed++
			continue
		}
		slog.Debug("review minimized", "review_id", id)
		result.Minimized++
	}

	return result, nil
}
