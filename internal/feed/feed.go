// Package feed provides paged data sources for the demo list.
package feed

import (
	"context"
	"fmt"
	"time"
)

// DefaultPageSize is the number of items per page.
const DefaultPageSize = 10

// Page is one fetch result.
type Page struct {
	Items   []string
	HasMore bool
}

//go:generate mockgen -destination=feedtest/mock_source.go -package=feedtest . Source

// Source fetches pages. Page 0 is a refresh; later pages are appended.
type Source interface {
	Fetch(ctx context.Context, page int) (Page, error)
}

// Simulated serves generated items after a fixed latency. After a refresh it
// serves ExtraPages more pages, the last of which reports no more items.
type Simulated struct {
	PageSize   int
	ExtraPages int
	Latency    time.Duration
}

// NewSimulated returns a source with ten items per page, three pages after
// the first and a two second latency.
func NewSimulated() Simulated {
	return Simulated{PageSize: DefaultPageSize, ExtraPages: 3, Latency: 2 * time.Second}
}

// Fetch implements Source.
func (s Simulated) Fetch(ctx context.Context, page int) (Page, error) {
	if page < 0 {
		return Page{}, fmt.Errorf("invalid page %d", page)
	}
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Page{}, ctx.Err()
		case <-timer.C:
		}
	}

	size := s.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	items := make([]string, 0, size)
	for i := 0; i < size; i++ {
		items = append(items, fmt.Sprintf("Item %d", page*size+i))
	}
	return Page{Items: items, HasMore: page < s.ExtraPages}, nil
}

var _ Source = Simulated{}
