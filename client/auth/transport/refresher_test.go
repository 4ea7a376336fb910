package transport

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefresher_SingleFlight(t *testing.T) {
	gate := make(chan struct{})
	calls := 0
	refresher := NewRefresher(func(ctx context.Context) (string, error) {
		calls++
		<-gate
		return "tok2", nil
	})

	const n = 5
	var wg sync.WaitGroup
	tokens := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			grant, err := refresher.Await(context.Background())
			errs[i] = err
			if grant != nil {
				tokens[i] = grant.Token
				grant.Release()
			}
		}(i)
	}
	require.Eventually(t, func() bool { return refresher.Waiting() == n-1 }, time.Second, time.Millisecond)
	assert.True(t, refresher.InFlight())
	close(gate)
	wg.Wait()

	assert.Equal(t, 1, calls)
	for i := 0; i < n; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, "tok2", tokens[i])
	}
	assert.False(t, refresher.InFlight())
	assert.Equal(t, 0, refresher.Waiting())
	assert.Equal(t, 1, refresher.Cycles())
}

func TestRefresher_FIFORelease(t *testing.T) {
	gate := make(chan struct{})
	refresher := NewRefresher(func(ctx context.Context) (string, error) {
		<-gate
		return "tok2", nil
	})

	var mux sync.Mutex
	var order []string
	var wg sync.WaitGroup
	join := func(name string) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			grant, err := refresher.Await(context.Background())
			if !assert.NoError(t, err) {
				return
			}
			mux.Lock()
			order = append(order, name)
			mux.Unlock()
			grant.Release()
		}()
	}

	join("leader")
	require.Eventually(t, refresher.InFlight, time.Second, time.Millisecond)
	for i, name := range []string{"A", "B", "C"} {
		join(name)
		want := i + 1
		require.Eventually(t, func() bool { return refresher.Waiting() == want }, time.Second, time.Millisecond)
	}
	close(gate)
	wg.Wait()
	assert.Equal(t, []string{"A", "B", "C", "leader"}, order)
}

func TestRefresher_Failure(t *testing.T) {
	gate := make(chan struct{})
	refreshErr := errors.New("refresh token invalid")
	var failures []error
	refresher := NewRefresher(func(ctx context.Context) (string, error) {
		<-gate
		return "", refreshErr
	}, WithFailureHandler(func(err error) {
		failures = append(failures, err)
	}))

	const n = 4
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = refresher.Await(context.Background())
		}(i)
	}
	require.Eventually(t, func() bool { return refresher.Waiting() == n-1 }, time.Second, time.Millisecond)
	close(gate)
	wg.Wait()

	for _, err := range errs {
		assert.ErrorIs(t, err, refreshErr)
	}
	assert.Len(t, failures, 1)
	assert.False(t, refresher.InFlight())
}

func TestRefresher_WaiterContext(t *testing.T) {
	gate := make(chan struct{})
	refresher := NewRefresher(func(ctx context.Context) (string, error) {
		<-gate
		return "tok2", nil
	})

	leaderDone := make(chan error, 1)
	go func() {
		_, err := refresher.Await(context.Background())
		leaderDone <- err
	}()
	require.Eventually(t, refresher.InFlight, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := refresher.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, refresher.Waiting())

	close(gate)
	assert.NoError(t, <-leaderDone)
}

func TestRefresher_Panic(t *testing.T) {
	var failures int
	refresher := NewRefresher(func(ctx context.Context) (string, error) {
		panic("boom")
	}, WithFailureHandler(func(err error) { failures++ }))

	grant, err := refresher.Await(context.Background())
	assert.Nil(t, grant)
	assert.EqualError(t, err, "refresh panicked: boom")
	assert.False(t, refresher.InFlight())
	assert.Equal(t, 1, failures)

	// a settled cycle never blocks the next one
	refresher.refresh = func(ctx context.Context) (string, error) { return "tok3", nil }
	grant, err = refresher.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok3", grant.Token)
	assert.Equal(t, 2, refresher.Cycles())
}

func TestRefresher_DetachedFromLeaderCancel(t *testing.T) {
	refresher := NewRefresher(func(ctx context.Context) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return "tok2", nil
		}
	}, WithCycleTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	grant, err := refresher.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok2", grant.Token)
}
