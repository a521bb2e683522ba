package notify

import "sync"

// Async hands toasts to a single goroutine so callers never wait on
// the underlying writer. Order of delivery matches order of submission.
type Async struct {
	next   Toaster
	queue  chan string
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsync starts the delivery goroutine. size is the queue capacity.
func NewAsync(next Toaster, size int) *Async {
	if size <= 0 {
		size = 16
	}
	a := &Async{
		next:  next,
		queue: make(chan string, size),
	}
	a.wg.Add(1)
	go a.loop()
	return a
}

func (a *Async) loop() {
	defer a.wg.Done()
	for text := range a.queue {
		a.next.Toast(text)
	}
}

// Toast enqueues text. Toasts submitted after Close are dropped.
func (a *Async) Toast(text string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}
	a.queue <- text
}

// Close delivers everything already queued, then stops the goroutine
func (a *Async) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	close(a.queue)
	a.mu.Unlock()
	a.wg.Wait()
}
