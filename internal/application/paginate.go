package application

import (
	"context"

	"github.com/ericfisherdev/reviewsweeper/internal/domain/model"
)

// pageFetch returns one page of a paginated resource. An empty cursor
// requests the first page.
type pageFetch[T any] func(ctx context.Context, cursor string) (model.Page[T], error)

// fetchAll drains a paginated resource, appending pages in fetch order.
// A failed page fails the whole fetch.
func fetchAll[T any](ctx context.Context, fetch pageFetch[T]) ([]T, error) {
	var all []T
	cursor := ""
	for {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Nodes...)
		if !page.Info.HasNextPage {
			return all, nil
		}
		cursor = page.Info.EndCursor
	}
}
