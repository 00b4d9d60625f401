package demo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/soettl/fluentui/internal/domain"
)

func TestDocument_Deterministic(t *testing.T) {
	a := NewSource(Options{Count: DefaultItemCount, Seed: 7})
	b := NewSource(Options{Count: DefaultItemCount, Seed: 7})

	for _, i := range []int{0, 1, 999, 19999} {
		require.Equal(t, a.Document(i), b.Document(i))
	}
}

func TestDocument_Fields(t *testing.T) {
	s := NewSource(Options{Count: 10, Seed: 1})
	doc := s.Document(3)

	require.Equal(t, 3, doc.Index)
	require.True(t, strings.HasSuffix(doc.Name, " 3."+doc.FileType), doc.Name)
	require.Contains(t, fileTypes, doc.FileType)
	require.GreaterOrEqual(t, doc.FileSizeRaw, uint64(30))
	require.Less(t, doc.FileSizeRaw, uint64(130))
	require.True(t, strings.HasSuffix(doc.FileSize, "kB"), doc.FileSize)
	require.False(t, doc.DateModified.Before(time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)))

	_, err := uuid.Parse(doc.Key)
	require.NoError(t, err)
	require.NotEqual(t, doc.Key, s.Document(4).Key)

	for _, w := range strings.Fields(doc.ModifiedBy) {
		require.Equal(t, strings.ToUpper(w[:1]), w[:1])
	}
}

func TestFetch(t *testing.T) {
	s := NewSource(Options{Count: 100, Seed: 1})

	docs, err := s.Fetch(context.Background(), domain.ItemRange{Start: 50, End: 60})
	require.NoError(t, err)
	require.Len(t, docs, 10)
	require.Equal(t, 50, docs[0].Index)

	_, err = s.Fetch(context.Background(), domain.ItemRange{Start: 90, End: 110})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestFetch_Cancelled(t *testing.T) {
	s := NewSource(Options{Count: 100, Latency: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Fetch(ctx, domain.ItemRange{Start: 0, End: 10})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSetCount(t *testing.T) {
	s := NewSource(Options{Count: 100})

	s.SetCount(20)
	require.Equal(t, 20, s.Count())

	_, err := s.Fetch(context.Background(), domain.ItemRange{Start: 10, End: 30})
	require.ErrorIs(t, err, ErrOutOfRange)

	s.SetCount(-5)
	require.Equal(t, 0, s.Count())
}
