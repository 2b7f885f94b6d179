package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshReplacesItemsAndSettlesLoading(t *testing.T) {
	c := NewCollection("test", func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	}, nil)

	assert.True(t, c.Loading(), "loading starts true")
	c.Refresh(context.Background())
	assert.False(t, c.Loading())
	assert.Equal(t, []string{"a", "b"}, c.Items())
}

func TestRefreshSwallowsErrorsAndKeepsPreviousCopy(t *testing.T) {
	fail := false
	c := NewCollection("test", func(ctx context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return []string{"kept"}, nil
	}, nil)

	c.Refresh(context.Background())
	require.Equal(t, []string{"kept"}, c.Items())

	fail = true
	c.Refresh(context.Background())
	assert.Equal(t, []string{"kept"}, c.Items(), "failed refresh leaves previous copy")
	assert.False(t, c.Loading(), "loading still settles on failure")
}

func TestStaleResponseDoesNotOverwriteNewerOne(t *testing.T) {
	// First refresh stalls until released; second completes first. The
	// first response is stale by generation and must be discarded.
	started := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex
	c := NewCollection("test", func(ctx context.Context) ([]string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(started)
			<-release
			return []string{"stale"}, nil
		}
		return []string{"fresh"}, nil
	}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Refresh(context.Background())
	}()

	// Wait until the first fetch is parked on the release channel so the
	// generations are ordered deterministically.
	<-started

	c.Refresh(context.Background())
	require.Equal(t, []string{"fresh"}, c.Items())

	close(release)
	wg.Wait()
	assert.Equal(t, []string{"fresh"}, c.Items(), "stale response must not win")
}
