// Package loader fetches list items on demand. It follows the rendered ranges
// published on the event bus and loads the missing pages in the background.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/soettl/fluentui/internal/domain"
	"github.com/soettl/fluentui/internal/eventbus"
	"github.com/soettl/fluentui/internal/store"
)

const (
	DefaultPageSize       = 50
	DefaultLoadAheadCount = 20
	// maxConcurrentPages bounds the fetches of a single LoadItemRange call
	maxConcurrentPages = 4
)

// Source supplies items for a range
type Source interface {
	Fetch(ctx context.Context, r domain.ItemRange) ([]domain.Document, error)
}

// Writer is the store the loader fills
type Writer interface {
	store.DocumentStore
	Put(docs ...domain.Document)
}

// Options configures a Loader
type Options struct {
	ItemCount      int
	PageSize       int
	LoadAheadCount int
}

// Loader loads pages of items into a store. Every page is fetched at most once
// at a time; a failed page is retried the next time it is rendered.
type Loader struct {
	bus    eventbus.EventBus
	store  Writer
	source Source

	pageSize  int
	loadAhead atomic.Int64
	itemCount atomic.Int64

	group singleflight.Group

	mu          sync.Mutex
	stopped     bool
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	unsubscribe func()
}

// New creates a loader
func New(bus eventbus.EventBus, s Writer, source Source, opts Options) *Loader {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.LoadAheadCount < 0 {
		opts.LoadAheadCount = 0
	}

	l := &Loader{
		bus:      bus,
		store:    s,
		source:   source,
		pageSize: opts.PageSize,
	}
	l.loadAhead.Store(int64(opts.LoadAheadCount))
	l.itemCount.Store(int64(max(opts.ItemCount, 0)))
	return l
}

// Start subscribes to rendered ranges. Loads started by events are cancelled
// by Stop or when ctx is done.
func (l *Loader) Start(ctx context.Context) {
	l.ctx, l.cancel = context.WithCancel(ctx)
	l.unsubscribe = l.bus.Subscribe(eventbus.EventItemsRendered, func(e eventbus.DomainEvent) {
		if rendered, ok := e.(domain.ItemsRenderedEvent); ok {
			l.handleItemsRendered(rendered)
		}
	})
}

// Stop unsubscribes, cancels in-flight loads and waits for them
func (l *Loader) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()

	if l.unsubscribe != nil {
		l.unsubscribe()
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
}

// IsItemLoaded reports whether the item at index is in the store
func (l *Loader) IsItemLoaded(index int) bool {
	return l.store.IsLoaded(index)
}

// LoadAheadCount is the number of items loaded beyond the materialized range
func (l *Loader) LoadAheadCount() int {
	return int(l.loadAhead.Load())
}

// SetLoadAheadCount changes the load-ahead distance
func (l *Loader) SetLoadAheadCount(n int) {
	l.loadAhead.Store(int64(max(n, 0)))
}

// SetItemCount changes the number of items ranges are clamped to
func (l *Loader) SetItemCount(n int) {
	l.itemCount.Store(int64(max(n, 0)))
}

// LoadItemRange loads every missing page overlapping r and blocks until they
// are stored. The first page error is returned.
func (l *Loader) LoadItemRange(ctx context.Context, r domain.ItemRange) error {
	r = r.Clamp(int(l.itemCount.Load()))
	if r.IsEmpty() || l.store.IsRangeLoaded(r) {
		return nil
	}

	// A failing page must not cancel its siblings
	var g errgroup.Group
	g.SetLimit(maxConcurrentPages)

	for _, page := range l.pages(r) {
		if l.store.IsRangeLoaded(page) {
			continue
		}
		g.Go(func() error {
			return l.loadPage(ctx, page)
		})
	}

	return g.Wait()
}

// pages splits r into page-aligned ranges
func (l *Loader) pages(r domain.ItemRange) []domain.ItemRange {
	count := int(l.itemCount.Load())

	var pages []domain.ItemRange
	for start := (r.Start / l.pageSize) * l.pageSize; start < r.End; start += l.pageSize {
		pages = append(pages, domain.ItemRange{Start: start, End: min(start+l.pageSize, count)})
	}
	return pages
}

func (l *Loader) loadPage(ctx context.Context, page domain.ItemRange) error {
	key := strconv.Itoa(page.Start)

	_, err, _ := l.group.Do(key, func() (interface{}, error) {
		if l.store.IsRangeLoaded(page) {
			return nil, nil
		}

		l.bus.Publish(domain.RangeLoadStartedEvent{Range: page})

		// Every started page ends with exactly one Loaded or Failed event
		docs, err := l.source.Fetch(ctx, page)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Printf("Loader: failed to load %s: %v", page, err)
			}
			l.bus.Publish(domain.RangeLoadFailedEvent{Range: page, Err: err})
			return nil, fmt.Errorf("failed to load %s: %w", page, err)
		}

		l.store.Put(docs...)
		l.bus.Publish(domain.RangeLoadedEvent{Range: page})
		return nil, nil
	})
	return err
}

// wantedRanges returns the ranges to load for a render: the materialized range
// plus the load-ahead on both sides, and the focused range
func (l *Loader) wantedRanges(e domain.ItemsRenderedEvent) []domain.ItemRange {
	count := int(l.itemCount.Load())
	ahead := l.LoadAheadCount()

	wanted := []domain.ItemRange{
		domain.ItemRange{
			Start: e.MaterializedRange.Start - ahead,
			End:   e.MaterializedRange.End + ahead,
		}.Clamp(count),
	}
	if e.FocusedRange != nil {
		wanted = append(wanted, e.FocusedRange.Clamp(count))
	}
	return wanted
}

func (l *Loader) handleItemsRendered(e domain.ItemsRenderedEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped || l.ctx == nil {
		return
	}

	for _, r := range l.wantedRanges(e) {
		if r.IsEmpty() || l.store.IsRangeLoaded(r) {
			continue
		}

		l.wg.Add(1)
		go func(r domain.ItemRange) {
			defer l.wg.Done()
			// Failures were already published per page
			_ = l.LoadItemRange(l.ctx, r)
		}(r)
	}
}
