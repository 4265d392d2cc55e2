package cli

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/analytics"
	"github.com/julianstephens/habitual/internal/models"
)

type AnalyticsCmd struct {
	Summary    AnalyticsSummaryCmd    `cmd:"" help:"Print a compact habit summary." default:"1"`
	Filter     AnalyticsFilterCmd     `cmd:"" help:"List habits with a given periodicity."`
	Longest    AnalyticsLongestCmd    `cmd:"" help:"Show the longest streak across all habits."`
	LongestFor AnalyticsLongestForCmd `cmd:"" name:"longest-for" help:"Show the streak for a given habit id."`
}

type AnalyticsSummaryCmd struct {
	User string `short:"u" help:"Account email."`
}

func (c *AnalyticsSummaryCmd) Run(ctx *Context) error {
	rows, err := loadSnapshot(ctx, c.User)
	if err != nil {
		return err
	}

	PrintSummary(rows)
	return nil
}

// PrintSummary prints the compact summary view built from the pure
// analytics functions.
func PrintSummary(rows []models.Habit) {
	views := analytics.ListAll(rows)
	if len(views) == 0 {
		fmt.Println("No habits to analyse.")
		return
	}

	fmt.Println("== Habit Summary ==")
	for _, v := range views {
		fmt.Println(FormatHabitLine(v))
	}

	if habitID, longest, ok := analytics.LongestStreakOverall(views); ok {
		fmt.Printf("Longest streak overall: %d (habit #%d)\n", longest, habitID)
	}
}

type AnalyticsFilterCmd struct {
	Periodicity string `arg:"" help:"Periodicity to filter by (daily|weekly|monthly)."`
	User        string `short:"u" help:"Account email."`
}

func (c *AnalyticsFilterCmd) Run(ctx *Context) error {
	p, err := models.ParsePeriodicity(c.Periodicity)
	if err != nil {
		return err
	}

	rows, err := loadSnapshot(ctx, c.User)
	if err != nil {
		return err
	}

	matches := analytics.ListByPeriodicity(rows, p)
	if len(matches) == 0 {
		fmt.Printf("No %s habits found.\n", p)
		return nil
	}

	fmt.Printf("%s habits:\n", p)
	for _, h := range matches {
		fmt.Println("  " + FormatHabitLine(h))
	}
	return nil
}

type AnalyticsLongestCmd struct {
	User string `short:"u" help:"Account email."`
}

func (c *AnalyticsLongestCmd) Run(ctx *Context) error {
	rows, err := loadSnapshot(ctx, c.User)
	if err != nil {
		return err
	}

	habitID, longest, ok := analytics.LongestStreakOverall(rows)
	if !ok {
		fmt.Println("No habits yet.")
		return nil
	}

	fmt.Printf("Longest streak: %d (habit #%d)\n", longest, habitID)
	return nil
}

type AnalyticsLongestForCmd struct {
	ID   int64  `arg:"" help:"Habit id."`
	User string `short:"u" help:"Account email."`
}

func (c *AnalyticsLongestForCmd) Run(ctx *Context) error {
	rows, err := loadSnapshot(ctx, c.User)
	if err != nil {
		return err
	}

	// An unknown id is a defined sentinel result, not an error.
	fmt.Printf("Longest streak for habit #%d: %d\n", c.ID, analytics.LongestStreakFor(rows, c.ID))
	return nil
}

func loadSnapshot(ctx *Context, email string) ([]models.Habit, error) {
	user, err := ctx.ResolveUser(email)
	if err != nil {
		return nil, err
	}
	return ctx.Store.GetHabitsByUser(user.ID)
}
