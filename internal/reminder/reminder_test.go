package reminder

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestReminderTicks(t *testing.T) {
	var buf bytes.Buffer

	r := New(7, "Drink Water", &buf)
	r.Start(10 * time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	r.Stop()

	// Stop has waited for the goroutine, so the buffer is quiescent.
	out := buf.String()
	if !strings.Contains(out, "Reminder for habit #7: Drink Water") {
		t.Errorf("output = %q, want at least one reminder line", out)
	}
}

func TestReminderStopsTicking(t *testing.T) {
	var buf bytes.Buffer

	r := New(1, "Read", &buf)
	r.Start(10 * time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	r.Stop()

	before := buf.Len()
	time.Sleep(50 * time.Millisecond)
	if buf.Len() != before {
		t.Error("reminder kept writing after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	r := New(1, "Meditate", &bytes.Buffer{})
	r.Start(time.Hour)

	r.Stop()
	r.Stop() // second call must not panic or block
}
