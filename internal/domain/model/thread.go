package model

// Comment is a single comment on a review thread. Author is empty when the
// account has been deleted; Review is nil when the comment is not part of a
// formal review.
type Comment struct {
	Author string
	Review *ReviewRef
}

// Thread is one review conversation anchored to a code location. Only the
// first comment carries attribution: it determines the thread's author and
// parent review. A thread with no comments, an authorless first comment, or
// a first comment outside any review is orphaned and ignored by grouping.
type Thread struct {
	ID         string
	IsResolved bool
	Comments   []Comment
}

// ThreadSummary is the projection of a Thread kept on an assembled Review.
type ThreadSummary struct {
	ID         string
	IsResolved bool
}
