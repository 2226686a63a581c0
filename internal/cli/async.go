package cli

import "context"

// background runs call on its own goroutine. The function it returns is
// queued and executed on the REPL goroutine before the next prompt, so it
// may read and replace the snapshot.
func (a *App) background(ctx context.Context, call func(context.Context) func()) {
	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		done := call(ctx)

		a.mu.Lock()
		a.ready = append(a.ready, done)
		a.mu.Unlock()
	}()
}

// drain runs queued suggestion results in arrival order.
func (a *App) drain() {
	a.mu.Lock()
	ready := a.ready
	a.ready = nil
	a.mu.Unlock()

	for _, fn := range ready {
		fn()
	}
}

// Wait blocks until all pending suggestion calls finished, then applies
// their results.
func (a *App) Wait() {
	a.inflight.Wait()
	a.drain()
}
