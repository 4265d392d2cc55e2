package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/julianstephens/habitual/internal/reminder"
)

type RemindCmd struct {
	ID      int64         `arg:"" help:"Habit id."`
	Message string        `arg:"" help:"Reminder message."`
	Every   time.Duration `help:"Tick interval." default:"24h"`
	For     time.Duration `help:"Stop after this duration (0 = until interrupted)." default:"0"`
}

func (c *RemindCmd) Run(cliCtx *Context) error {
	r := reminder.New(c.ID, c.Message, nil)
	r.Start(c.Every)
	defer r.Stop()

	fmt.Printf("Reminding for habit #%d every %s (Ctrl-C to stop)\n", c.ID, c.Every)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if c.For > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(c.For):
		}
		return nil
	}

	<-ctx.Done()
	return nil
}
