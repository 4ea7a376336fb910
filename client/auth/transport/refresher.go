package transport

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const defaultRefreshTimeout = 30 * time.Second

// RefreshFunc redeems the refresh token and returns the new access token.
type RefreshFunc func(ctx context.Context) (string, error)

type RefresherOption func(*Refresher)

// WithFailureHandler is called once per failed refresh cycle, after every
// parked caller has been rejected.
func WithFailureHandler(fn func(err error)) RefresherOption {
	return func(r *Refresher) {
		r.onFailure = fn
	}
}

// WithCycleTimeout bounds each refresh call.
func WithCycleTimeout(timeout time.Duration) RefresherOption {
	return func(r *Refresher) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// Refresher coalesces concurrent refresh demands into one refresh call.
//
// The first caller of Await in a cycle runs the refresh; callers arriving
// while it runs park in a FIFO queue. When the refresh settles the queue is
// drained exactly once: on success parked callers are released one at a
// time in arrival order, each released caller must call Grant.Release once
// it has handed its replay to the network; on failure all of them receive the
// refresh error.
type Refresher struct {
	refresh   RefreshFunc
	onFailure func(err error)
	timeout   time.Duration

	mux     sync.Mutex
	current *cycle
	cycles  int
}

type cycle struct {
	waiters []*waiter
	settled bool
	token   string
	err     error
}

type waiter struct {
	grant chan outcome
	// released is closed by the waiter once its replay is issued
	released chan struct{}
	// gone is closed when the waiter stops listening
	gone     chan struct{}
	goneOnce sync.Once
}

type outcome struct {
	token string
	err   error
}

func (w *waiter) leave() {
	w.goneOnce.Do(func() { close(w.gone) })
}

// Grant carries the access token produced by a refresh cycle.
type Grant struct {
	Token   string
	release func()
}

// Release signals that the replay using Token has been issued, letting the
// next parked caller go. It is safe to call more than once.
func (g *Grant) Release() {
	if g != nil && g.release != nil {
		g.release()
	}
}

// NewRefresher creates a Refresher running refresh once per cycle.
func NewRefresher(refresh RefreshFunc, options ...RefresherOption) *Refresher {
	ret := &Refresher{refresh: refresh, timeout: defaultRefreshTimeout}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// InFlight reports whether a refresh cycle is in progress.
func (r *Refresher) InFlight() bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.current != nil
}

// Waiting returns the number of callers parked on the current cycle.
func (r *Refresher) Waiting() int {
	r.mux.Lock()
	defer r.mux.Unlock()
	if r.current == nil {
		return 0
	}
	return len(r.current.waiters)
}

// Cycles returns the number of completed refresh cycles.
func (r *Refresher) Cycles() int {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.cycles
}

// Await joins the current refresh cycle or starts one.
func (r *Refresher) Await(ctx context.Context) (*Grant, error) {
	r.mux.Lock()
	if c := r.current; c != nil {
		if c.settled {
			// cycle is draining, its outcome applies to late arrivals too
			r.mux.Unlock()
			if c.err != nil {
				return nil, c.err
			}
			return &Grant{Token: c.token}, nil
		}
		w := &waiter{grant: make(chan outcome, 1), released: make(chan struct{}), gone: make(chan struct{})}
		c.waiters = append(c.waiters, w)
		r.mux.Unlock()
		return r.wait(ctx, c, w)
	}
	c := &cycle{}
	r.current = c
	r.mux.Unlock()
	return r.lead(ctx, c)
}

func (r *Refresher) wait(ctx context.Context, c *cycle, w *waiter) (*Grant, error) {
	select {
	case out := <-w.grant:
		if out.err != nil {
			return nil, out.err
		}
		var once sync.Once
		return &Grant{Token: out.token, release: func() {
			once.Do(func() { close(w.released) })
		}}, nil
	case <-ctx.Done():
		r.mux.Lock()
		for i, candidate := range c.waiters {
			if candidate == w {
				c.waiters = append(c.waiters[:i:i], c.waiters[i+1:]...)
				break
			}
		}
		r.mux.Unlock()
		w.leave()
		return nil, ctx.Err()
	}
}

func (r *Refresher) lead(ctx context.Context, c *cycle) (grant *Grant, err error) {
	settled := false
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("refresh panicked: %v", rec)
			grant = nil
		}
		if !settled {
			r.settle(c, "", err)
		}
		r.finish()
	}()

	refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()
	token, err := r.refresh(refreshCtx)
	settled = true
	r.settle(c, token, err)
	if err != nil {
		return nil, err
	}
	return &Grant{Token: token}, nil
}

// settle resolves the cycle and drains its queue.
func (r *Refresher) settle(c *cycle, token string, err error) {
	r.mux.Lock()
	c.settled = true
	c.token, c.err = token, err
	waiters := c.waiters
	c.waiters = nil
	r.mux.Unlock()

	for _, w := range waiters {
		w.grant <- outcome{token: token, err: err}
		if err != nil {
			continue
		}
		select {
		case <-w.released:
		case <-w.gone:
		}
	}
	if err != nil && r.onFailure != nil {
		r.onFailure(err)
	}
}

// finish clears the in-progress state; it always runs last.
func (r *Refresher) finish() {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.current = nil
	r.cycles++
}
