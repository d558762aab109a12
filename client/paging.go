package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of pages fetched at once
const DefaultConcurrency = 4

// Concurrency returns the page concurrency configured on api, or
// DefaultConcurrency when api does not carry one
func Concurrency(api API) int {
	if c, ok := api.(interface{ Concurrency() int }); ok && c.Concurrency() >= 1 {
		return c.Concurrency()
	}
	return DefaultConcurrency
}

// PageFunc fetches a single page of a collection
type PageFunc[T any] func(ctx context.Context, page int) (Collection[T], error)

// FetchAll fetches every page of a collection. The first page is fetched
// alone to learn the page count, the rest run concurrently. Items are
// returned in page order.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], concurrency int) ([]T, error) {
	first, err := fetch(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page 1: %w", err)
	}
	if first.Pages <= 1 {
		return first.Items, nil
	}

	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	// pages[i] holds page i+2
	pages := make([][]T, first.Pages-1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for page := 2; page <= first.Pages; page++ {
		g.Go(func() error {
			c, err := fetch(ctx, page)
			if err != nil {
				return fmt.Errorf("failed to fetch page %d: %w", page, err)
			}
			pages[page-2] = c.Items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]T, 0, max(first.Count, len(first.Items)))
	items = append(items, first.Items...)
	for _, p := range pages {
		items = append(items, p...)
	}
	return items, nil
}
