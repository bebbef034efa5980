package model

// PageInfo mirrors the page indicator returned by a paginated GitHub
// GraphQL connection.
type PageInfo struct {
	HasNextPage bool
	EndCursor   string
}

// Page is one page of a paginated resource.
type Page[T any] struct {
	Nodes []T
	Info  PageInfo
}
