package app

import (
	"context"
	"log"
	"time"
)

const (
	defaultWatchInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// reloader is the part of session.Store the watcher drives.
type reloader interface {
	Reload() (bool, error)
}

// WatchSession launches a background goroutine that re-reads the session at
// a fixed cadence, backing off while reads fail. Each change is signalled on
// the returned channel, coalesced when the reader is behind. The channel is
// closed when ctx is done.
func WatchSession(ctx context.Context, store reloader, interval time.Duration) <-chan struct{} {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		failures := 0

		for {
			changed, err := store.Reload()
			if err != nil {
				failures++
				log.Printf("session reload failed (attempt %d): %v", failures, err)
			} else {
				failures = 0
			}
			if changed {
				select {
				case changes <- struct{}{}:
				default:
				}
			}

			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
	return changes
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func watchInterval(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultWatchInterval
	}
	return time.Duration(seconds) * time.Second
}
