package model

import "time"

// ReviewRef identifies a review as carried by the flat review list or by a
// thread's first comment: the review's node ID plus the metadata the
// eligibility pass needs. Author is empty for deleted accounts.
type ReviewRef struct {
	ID          string
	Author      string
	SubmittedAt time.Time
	IsMinimized bool
}

// Review is a canonical assembled review: one reviewer's submission plus
// the summaries of every thread whose first comment points at it. Threads
// is empty for reviews with no inline comments, such as a bare approval.
type Review struct {
	ID          string
	Author      string
	SubmittedAt time.Time
	IsMinimized bool
	Threads     []ThreadSummary
}
