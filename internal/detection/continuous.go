package detection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storesense/internal/geo"
)

// Watcher is a continuous detection session driven by position updates.
// Fixes are coalesced: if a pass is still running when fixes arrive, only
// the latest is evaluated once it finishes.
type Watcher struct {
	svc      *Service
	onChange func(Result)
	onError  func(error)

	fixes chan geo.Point
	done  chan struct{}
	sub   Canceler

	mu       sync.Mutex
	stopped  bool
	stopOnce sync.Once
}

// Watch starts continuous detection. Callbacks run on the watcher's own
// goroutine and stop after Stop returns.
func (s *Service) Watch(onChange func(Result), onError func(error)) (*Watcher, error) {
	if s.positions == nil {
		return nil, fmt.Errorf("detection: no position source configured")
	}
	if onChange == nil {
		return nil, fmt.Errorf("detection: onChange callback is required")
	}

	w := &Watcher{
		svc:      s,
		onChange: onChange,
		onError:  onError,
		fixes:    make(chan geo.Point, 1),
		done:     make(chan struct{}),
	}

	sub, err := s.positions.Watch(w.enqueue, w.deliverError)
	if err != nil {
		return nil, fmt.Errorf("starting position watch: %w", err)
	}
	w.sub = sub

	go w.run()
	return w, nil
}

// enqueue replaces any pending fix with the newest one.
func (w *Watcher) enqueue(point geo.Point) {
	for {
		select {
		case w.fixes <- point:
			return
		default:
			select {
			case <-w.fixes:
			default:
			}
		}
	}
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case point := <-w.fixes:
			w.process(point)
		}
	}
}

func (w *Watcher) process(point geo.Point) {
	ctx := context.Background()
	start := time.Now()

	observations := w.svc.gatherWireless(ctx)
	result := w.svc.evaluate(ctx, &point, observations, w.svc.cfg.WatchRadiusM)
	w.svc.metrics.ObserveDetection(methodLabel(result), time.Since(start))
	w.svc.emitDetection(ctx, result)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stopped {
		w.onChange(result)
	}
}

func (w *Watcher) deliverError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stopped && w.onError != nil {
		w.onError(err)
	}
}

// Stop ends the session. After Stop returns, no further callbacks run. Safe
// to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.sub.Cancel()
		close(w.done)
	})
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
}
