package application

import (
	"github.com/ericfisherdev/reviewsweeper/internal/domain/model"
)

// GroupThreadsByReview groups review threads under the review their first
// comment belongs to. Orphaned threads (no comments, authorless first
// comment, or first comment outside any review) contribute nothing. The
// first thread to reference a review fixes that review's author, timestamp,
// and minimized state; later threads only add their summaries. Reviews come
// back in order of first discovery, and only reviews with at least one
// thread are produced.
func GroupThreadsByReview(threads []model.Thread) []model.Review {
	byID := make(map[string]*model.Review, len(threads))
	var order []string

	for _, t := range threads {
		if len(t.Comments) == 0 {
			continue
		}
		first := t.Comments[0]
		if first.Author == "" || first.Review == nil {
			continue
		}

		review, ok := byID[first.Review.ID]
		if !ok {
			review = &model.Review{
				ID:          first.Review.ID,
				Author:      first.Author,
				SubmittedAt: first.Review.SubmittedAt,
				IsMinimized: first.Review.IsMinimized,
			}
			byID[review.ID] = review
			order = append(order, review.ID)
		}
		review.Threads = append(review.Threads, model.ThreadSummary{
			ID:         t.ID,
			IsResolved: t.IsResolved,
		})
	}

	reviews := make([]model.Review, 0, len(order))
	for _, id := range order {
		reviews = append(reviews, *byID[id])
	}
	return reviews
}

// BuildReviewList merges thread-derived reviews with the flat review list
// into the canonical review collection. A review already discovered through
// a thread keeps its thread-derived record; the remaining bare reviews join
// with an empty thread set so that approvals without inline comments still
// count toward "most recent review per author". Bare reviews with no author
// are dropped: they can never be attributed or protected.
func BuildReviewList(threads []model.Thread, bare []model.ReviewRef) []model.Review {
	reviews := GroupThreadsByReview(threads)

	seen := make(map[string]struct{}, len(reviews))
	for _, r := range reviews {
		seen[r.ID] = struct{}{}
	}

	for _, b := range bare {
		if b.Author == "" {
			continue
		}
		if _, ok := seen[b.ID]; ok {
			continue
		}
		seen[b.ID] = struct{}{}
		reviews = append(reviews, model.Review{
			ID:          b.ID,
			Author:      b.Author,
			SubmittedAt: b.SubmittedAt,
			IsMinimized: b.IsMinimized,
			Threads:     []model.ThreadSummary{},
		})
	}

	return reviews
}
