package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/streak"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	List     HabitListCmd     `cmd:"" help:"List habits."`
	Checkoff HabitCheckoffCmd `cmd:"" help:"Check off a habit for a date."`
	History  HabitHistoryCmd  `cmd:"" help:"Show recent completion timestamps."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Delete a habit and its history."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	User        string `short:"u" help:"Account email."`
	Description string `short:"d" help:"Habit description."`
	Goal        string `short:"g" help:"Goal/category."`
	Start       string `short:"s" help:"Start date (YYYY-MM-DD, default: today)."`
	Periodicity string `short:"p" help:"Periodicity (daily|weekly|monthly)." default:"daily"`
	Reminder    string `short:"r" help:"Reminder time (HH:MM, optional)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	user, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	start := c.Start
	if start == "" {
		start = time.Now().Format(constants.DateFormat)
	}

	habit, err := models.NewHabitFromForm(c.Name, c.Description, c.Goal, start, c.Periodicity, c.Reminder)
	if err != nil {
		return err
	}
	habit.UserID = user.ID

	id, err := ctx.Store.AddHabit(habit)
	if err != nil {
		return err
	}

	fmt.Printf("Saved habit %q (id=%d)\n", habit.Name, id)
	return nil
}

type HabitListCmd struct {
	User string `short:"u" help:"Account email."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	user, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	fmt.Println("Your habits:")
	for _, h := range habits {
		fmt.Println("  " + FormatHabitLine(h))
	}
	return nil
}

type HabitCheckoffCmd struct {
	ID   int64  `arg:"" help:"Habit id."`
	User string `short:"u" help:"Account email."`
	Date string `help:"Completion date (YYYY-MM-DD, default: today)."`
}

func (c *HabitCheckoffCmd) Run(ctx *Context) error {
	user, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}

	habit, err := FindHabit(habits, c.ID)
	if err != nil {
		return err
	}

	onDate := time.Now().UTC()
	logTimestamp := time.Now().Format(time.RFC3339)
	if c.Date != "" {
		onDate, err = time.Parse(constants.DateFormat, c.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
		}
		logTimestamp = onDate.Format(time.RFC3339)
	}

	updated, err := CheckOffHabit(ctx, habit, onDate, logTimestamp)
	if err != nil {
		return err
	}

	fmt.Printf("Checked off %q. Current streak: %d\n", updated.Name, updated.Streak)
	fmt.Printf("Completion logged at %s\n", logTimestamp)
	return nil
}

// CheckOffHabit runs the streak transition for a habit, persists the new
// progress state, and appends a completion-log entry. Shared between the
// direct command and the interactive menu.
func CheckOffHabit(ctx *Context, habit models.Habit, onDate time.Time, logTimestamp string) (models.Habit, error) {
	day := onDate.Format(constants.DateFormat)
	if habit.LastCompletedDate != nil && day < *habit.LastCompletedDate {
		// Accepted as-is, but the anchor date moves backward.
		logger.Warn("check-off predates last completion",
			"habit", habit.ID, "on", day, "last", *habit.LastCompletedDate)
	}

	progress, err := streak.CheckOff(streak.Progress{
		Completed:         habit.Completed,
		Streak:            habit.Streak,
		LastCompletedDate: habit.LastCompletedDate,
	}, habit.Periodicity, onDate)
	if err != nil {
		return models.Habit{}, err
	}

	if err := ctx.Store.UpdateHabitProgress(habit.ID, progress.Completed, progress.Streak, progress.LastCompletedDate); err != nil {
		return models.Habit{}, err
	}
	if err := ctx.Store.AddCompletion(habit.ID, logTimestamp); err != nil {
		return models.Habit{}, err
	}

	habit.Completed = progress.Completed
	habit.Streak = progress.Streak
	habit.LastCompletedDate = progress.LastCompletedDate
	return habit, nil
}

type HabitHistoryCmd struct {
	ID    int64  `arg:"" help:"Habit id."`
	User  string `short:"u" help:"Account email."`
	Limit int    `help:"Maximum entries to show." default:"20"`
}

func (c *HabitHistoryCmd) Run(ctx *Context) error {
	user, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}

	habit, err := FindHabit(habits, c.ID)
	if err != nil {
		return err
	}

	history, err := ctx.Store.GetCompletions(habit.ID, c.Limit)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Println("No completions logged yet.")
		return nil
	}

	fmt.Printf("Completion history for %q:\n", habit.Name)
	for _, ts := range history {
		fmt.Printf("  - %s\n", ts)
	}
	return nil
}

type HabitDeleteCmd struct {
	ID   int64  `arg:"" help:"Habit id."`
	User string `short:"u" help:"Account email."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.ResolveUser(c.User)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}

	habit, err := FindHabit(habits, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q.\n", habit.Name)
	return nil
}
