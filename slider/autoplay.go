package slider

import (
	"sync"
	"time"
)

// DefaultInterval is the autoplay period used when none is configured.
const DefaultInterval = 3 * time.Second

// Autoplay calls fn every interval until stopped. Start always stops the
// running timer first, so a handle never has more than one active timer.
//
// fn runs on the timer goroutine and must not block; callers typically use it
// to post a message to their own event loop rather than touch the slider.
type Autoplay struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	stop     chan struct{}
	done     chan struct{}
}

// NewAutoplay creates a stopped handle. A non-positive interval means
// DefaultInterval.
func NewAutoplay(interval time.Duration, fn func()) *Autoplay {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autoplay{interval: interval, fn: fn}
}

// Start (re)arms the timer.
func (a *Autoplay) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()

	stop := make(chan struct{})
	done := make(chan struct{})
	a.stop, a.done = stop, done

	go func() {
		defer close(done)
		t := time.NewTicker(a.interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				a.fn()
			}
		}
	}()
}

// Stop cancels the timer and waits for its goroutine to exit.
func (a *Autoplay) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *Autoplay) stopLocked() {
	if a.stop == nil {
		return
	}
	close(a.stop)
	<-a.done
	a.stop, a.done = nil, nil
}

// Running reports whether a timer is armed.
func (a *Autoplay) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stop != nil
}

// Interval is the tick period.
func (a *Autoplay) Interval() time.Duration { return a.interval }
