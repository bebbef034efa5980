package application

import (
	"sort"

	"github.com/ericfisherdev/reviewsweeper/internal/domain/model"
)

// FindReviewsToMinimize selects the stale, fully-addressed reviews to hide.
// Reviews are partitioned by author; within each partition the most recent
// review is always kept visible, regardless of its state. Any older review
// qualifies when it is not already minimized and every one of its threads
// is resolved (a review with no threads counts as fully resolved). A
// non-empty allowlist restricts the pass to exactly those authors, matched
// case-sensitively; an empty allowlist accepts everyone.
func FindReviewsToMinimize(reviews []model.Review, allowlist []string) []string {
	allowed := make(map[string]struct{}, len(allowlist))
	for _, author := range allowlist {
		allowed[author] = struct{}{}
	}

	byAuthor := make(map[string][]model.Review)
	var authorOrder []string
	for _, r := range reviews {
		if len(allowed) > 0 {
			if _, ok := allowed[r.Author]; !ok {
				continue
			}
		}
		if _, ok := byAuthor[r.Author]; !ok {
			authorOrder = append(authorOrder, r.Author)
		}
		byAuthor[r.Author] = append(byAuthor[r.Author], r)
	}

	var toMinimize []string
	for _, author := range authorOrder {
		authored := byAuthor[author]
		// Stable sort keeps collection order as the tiebreak for equal timestamps.
		sort.SliceStable(authored, func(i, j int) bool {
			return authored[i].SubmittedAt.After(authored[j].SubmittedAt)
		})

		// authored[0] is the author's latest review and stays visible.
		for _, r := range authored[1:] {
			if r.IsMinimized {
				continue
			}
			if allThreadsResolved(r.Threads) {
				toMinimize = append(toMinimize, r.ID)
			}
		}
	}

	return toMinimize
}

func allThreadsResolved(threads []model.ThreadSummary) bool {
	for _, t := range threads {
		if !t.IsResolved {
			return false
		}
	}
	return true
}
