// Package demo generates the file documents shown by the details list.
// Generation is deterministic for a given seed, so a page can be produced on
// demand in any order.
package demo

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/soettl/fluentui/internal/domain"
)

const DefaultItemCount = 20000

// ErrOutOfRange is returned when a page lies outside the generated items
var ErrOutOfRange = errors.New("range outside of the document set")

var fileTypes = []string{
	"accdb", "csv", "docx", "dotx", "mpt", "odt", "one", "onepkg",
	"onetoc", "pptx", "pub", "vsdx", "xls", "xlsx", "xsn",
}

var loremIpsum = strings.Fields(
	"lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor incididunt ut " +
		"labore et dolore magna aliqua ut enim ad minim veniam quis nostrud exercitation ullamco laboris nisi ut " +
		"aliquip ex ea commodo consequat duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore " +
		"eu fugiat nulla pariatur excepteur sint occaecat cupidatat non proident sunt in culpa qui officia deserunt",
)

// keySpace namespaces the document keys
var keySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/soettl/fluentui/documents"))

// Options configures a Source
type Options struct {
	Count   int
	Seed    uint64
	Latency time.Duration
	// Since and Until bound the modification dates
	Since time.Time
	Until time.Time
}

// Source produces demo documents. Count and latency may be changed while
// fetches are running.
type Source struct {
	opts    Options
	count   atomic.Int64
	latency atomic.Int64
}

// NewSource creates a document source
func NewSource(opts Options) *Source {
	if opts.Count < 0 {
		opts.Count = 0
	}
	if opts.Since.IsZero() {
		opts.Since = time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if opts.Until.IsZero() || !opts.Until.After(opts.Since) {
		opts.Until = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	s := &Source{opts: opts}
	s.count.Store(int64(opts.Count))
	s.latency.Store(int64(opts.Latency))
	return s
}

// Count returns the number of documents
func (s *Source) Count() int {
	return int(s.count.Load())
}

// SetCount changes the number of documents
func (s *Source) SetCount(n int) {
	s.count.Store(int64(max(n, 0)))
}

// SetLatency changes the simulated fetch latency
func (s *Source) SetLatency(d time.Duration) {
	s.latency.Store(int64(max(d, 0)))
}

// Fetch returns the documents of r after the configured latency
func (s *Source) Fetch(ctx context.Context, r domain.ItemRange) ([]domain.Document, error) {
	count := s.Count()
	if r.Start < 0 || r.End > count {
		return nil, fmt.Errorf("%w: %s of %d", ErrOutOfRange, r, count)
	}

	if latency := time.Duration(s.latency.Load()); latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	docs := make([]domain.Document, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		docs = append(docs, s.Document(i))
	}
	return docs, nil
}

// Document generates the document at index
func (s *Source) Document(index int) domain.Document {
	rng := rand.New(rand.NewPCG(s.opts.Seed, uint64(index)))

	fileType := fileTypes[rng.IntN(len(fileTypes))]
	sizeKB := uint64(rng.IntN(100) + 30)

	span := s.opts.Until.Sub(s.opts.Since)
	modified := s.opts.Since.Add(time.Duration(rng.Int64N(int64(span))))

	name := capitalize(lorem(2*index, 2)) + fmt.Sprintf(" %d.%s", index, fileType)
	modifiedBy := lorem(2*index+1, 2)
	words := strings.Fields(modifiedBy)
	for i, w := range words {
		words[i] = capitalize(w)
	}

	return domain.Document{
		Key:          uuid.NewSHA1(keySpace, fmt.Appendf(nil, "%d", index)).String(),
		Index:        index,
		Name:         name,
		FileType:     fileType,
		ModifiedBy:   strings.Join(words, " "),
		DateModified: modified,
		FileSizeRaw:  sizeKB,
		FileSize:     humanize.Bytes(sizeKB * 1000),
	}
}

// lorem returns count consecutive words for the n-th request, wrapping to the
// start when the text runs out
func lorem(n, count int) string {
	perCycle := len(loremIpsum) / count
	start := (n % perCycle) * count
	return strings.Join(loremIpsum[start:start+count], " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
