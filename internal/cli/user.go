package cli

import "fmt"

type UserCmd struct {
	Add UserAddCmd `cmd:"" help:"Create a new account."`
}

type UserAddCmd struct {
	Name  string `arg:"" help:"Display name."`
	Email string `arg:"" help:"Email address (must be unique)."`
}

func (c *UserAddCmd) Run(ctx *Context) error {
	// A duplicate email surfaces as a store constraint error and aborts
	// this operation only.
	id, err := ctx.Store.AddUser(c.Name, c.Email)
	if err != nil {
		return err
	}

	fmt.Printf("Created account for %s (id=%d)\n", c.Email, id)
	return nil
}
