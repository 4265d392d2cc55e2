package cli

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/seed"
)

type SeedCmd struct {
	User     string `short:"u" help:"Account email."`
	Backfill bool   `help:"Replay a four-week completion history for the demo habits."`
}

func (c *SeedCmd) Run(ctx *Context) error {
	user, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	n, err := seed.DemoHabits(ctx.Store, user.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println("Account already has habits, nothing seeded.")
	} else {
		fmt.Printf("Seeded %d demo habits.\n", n)
	}

	if c.Backfill {
		if err := seed.Backfill(ctx.Store, user.ID); err != nil {
			return err
		}
		start, end := seed.BackfillWindow()
		fmt.Printf("Backfilled completions from %s to %s.\n", start, end)
	}

	return nil
}
