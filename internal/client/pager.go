package client

import (
	"context"
	"sync"

	"github.com/coopkiosk/backend/internal/models"
)

// FetchPage loads one 1-indexed page of a list.
type FetchPage[T any] func(ctx context.Context, page, limit int) ([]T, models.Pagination, error)

// Pager composes fixed-size pages into one growing in-memory list, the way
// an infinite-scroll screen consumes it. Page 1 always replaces the list;
// later pages append in order. Page loads within one pager are serialized,
// and every response is checked against the request generation so a
// superseded fetch can never overwrite fresher data.
type Pager[T any] struct {
	fetch FetchPage[T]
	limit int

	mu       sync.Mutex
	items    []T
	page     int
	total    int
	hasNext  bool
	loaded   bool
	inFlight bool
	gen      uint64
}

// NewPager builds a pager over a page fetcher. One pager serves one list.
func NewPager[T any](fetch FetchPage[T], limit int) *Pager[T] {
	if limit <= 0 {
		limit = 20
	}
	return &Pager[T]{fetch: fetch, limit: limit}
}

// Refresh fetches page 1 and replaces the list with exactly its contents,
// recomputing "has next" from scratch. Any in-flight load is superseded:
// its result will be dropped when it resolves.
func (p *Pager[T]) Refresh(ctx context.Context) ([]T, error) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	items, pg, err := p.fetch(ctx, 1, p.limit)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// A newer refresh superseded this one; keep its state.
		return p.snapshot(), nil
	}
	if err != nil {
		return nil, err
	}

	p.items = append([]T(nil), items...)
	p.page = 1
	p.total = pg.Total
	p.hasNext = pg.HasNext
	p.loaded = true
	return p.snapshot(), nil
}

// LoadMore appends the next page, preserving order. Once the server has
// reported no next page, LoadMore returns without issuing any request. The
// first load of an untouched pager is a Refresh.
func (p *Pager[T]) LoadMore(ctx context.Context) ([]T, bool, error) {
	p.mu.Lock()
	if !p.loaded {
		p.mu.Unlock()
		items, err := p.Refresh(ctx)
		return items, p.HasNext(), err
	}
	if !p.hasNext || p.inFlight {
		items, hasNext := p.snapshot(), p.hasNext
		p.mu.Unlock()
		return items, hasNext, nil
	}

	gen := p.gen
	next := p.page + 1
	p.inFlight = true
	p.mu.Unlock()

	items, pg, err := p.fetch(ctx, next, p.limit)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if gen != p.gen {
		// A refresh happened while this page was in flight; drop it.
		return p.snapshot(), p.hasNext, nil
	}
	if err != nil {
		return nil, p.hasNext, err
	}

	p.items = append(p.items, items...)
	p.page = next
	p.total = pg.Total
	p.hasNext = pg.HasNext
	return p.snapshot(), p.hasNext, nil
}

// Items returns a copy of the composed list.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// HasNext reports whether the server indicated a further page.
func (p *Pager[T]) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasNext
}

// Total returns the server-reported total record count.
func (p *Pager[T]) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

func (p *Pager[T]) snapshot() []T {
	return append([]T(nil), p.items...)
}
