// Package reminder prints periodic console reminders for a habit. Unlike a
// daemon thread, a Reminder is cancellable: Stop terminates the ticker and
// waits for the goroutine to exit.
package reminder

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Reminder sends periodic console reminders for a single habit. It shares
// no mutable state with the rest of the application beyond the habit id and
// message it was created with.
type Reminder struct {
	habitID int64
	message string
	out     io.Writer

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a reminder for the given habit. A nil out writes to stdout.
func New(habitID int64, message string, out io.Writer) *Reminder {
	if out == nil {
		out = os.Stdout
	}
	return &Reminder{
		habitID: habitID,
		message: message,
		out:     out,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins ticking in a background goroutine. Missed ticks are not made
// up.
func (r *Reminder) Start(interval time.Duration) {
	go func() {
		defer close(r.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.send()
			case <-r.stop:
				return
			}
		}
	}()
}

// Stop cancels the reminder and waits for the background goroutine to
// finish. Safe to call more than once.
func (r *Reminder) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	<-r.done
}

func (r *Reminder) send() {
	fmt.Fprintf(r.out, "Reminder for habit #%d: %s\n", r.habitID, r.message)
}
