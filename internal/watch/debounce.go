package watch

import (
	"sync"
	"time"
)

// Debounce collapses bursts of events for the same path into one,
// emitted after delay of quiet. Editors tend to fire several writes for
// a single save. The returned channel stays open; once inCh closes the
// pending timers are flushed and nothing more is sent.
func Debounce(inCh <-chan string, delay time.Duration) <-chan string {
	outCh := make(chan string, cap(inCh))

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)
	done := false

	go func() {
		for path := range inCh {
			mu.Lock()
			if t, ok := timers[path]; ok {
				t.Stop()
			}

			p := path
			timers[p] = time.AfterFunc(delay, func() {
				mu.Lock()
				if done {
					mu.Unlock()
					return
				}
				delete(timers, p)
				mu.Unlock()

				outCh <- p
			})
			mu.Unlock()
		}

		mu.Lock()
		for p, t := range timers {
			if t.Stop() {
				outCh <- p
			}
		}
		done = true
		mu.Unlock()
	}()

	return outCh
}
