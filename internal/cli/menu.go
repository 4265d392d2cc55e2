package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/analytics"
	"github.com/julianstephens/habitual/internal/constants"
	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/seed"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const (
	choiceAdd        = "add"
	choiceList       = "list"
	choiceCheckoff   = "checkoff"
	choiceSummary    = "summary"
	choiceHistory    = "history"
	choiceFilter     = "filter"
	choiceLongest    = "longest"
	choiceLongestFor = "longest-for"
	choiceDelete     = "delete"
	choiceExit       = "exit"
)

// MenuCmd runs the interactive session: sign in once, then perform one
// bounded operation per selection until exit. Validation errors abort the
// current operation and return to the menu.
type MenuCmd struct{}

func (c *MenuCmd) Run(ctx *Context) error {
	fmt.Println(menuTitleStyle.Render("Welcome to the Habit Tracker!"))

	user, err := signIn(ctx)
	if err != nil {
		return err
	}

	if n, err := seed.DemoHabits(ctx.Store, user.ID); err != nil {
		return err
	} else if n > 0 {
		fmt.Printf("Seeded %d demo habits to get you started.\n", n)
	}

	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an option").
				Options(
					huh.NewOption("Add a new habit", choiceAdd),
					huh.NewOption("View all habits", choiceList),
					huh.NewOption("Check off a habit", choiceCheckoff),
					huh.NewOption("Analytics summary", choiceSummary),
					huh.NewOption("View completion history", choiceHistory),
					huh.NewOption("List habits by periodicity", choiceFilter),
					huh.NewOption("Longest streak overall", choiceLongest),
					huh.NewOption("Longest streak for a given habit", choiceLongestFor),
					huh.NewOption("Delete a habit", choiceDelete),
					huh.NewOption("Exit", choiceExit),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Goodbye.")
				return nil
			}
			return err
		}

		if choice == choiceExit {
			fmt.Println("Goodbye.")
			return nil
		}

		if err := c.dispatch(ctx, user, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			// Recoverable: report and return to the menu.
			fmt.Println(menuErrorStyle.Render(apperrors.Format(err)))
		}
	}
}

func (c *MenuCmd) dispatch(ctx *Context, user models.User, choice string) error {
	switch choice {
	case choiceAdd:
		return addHabitFlow(ctx, user)
	case choiceList:
		return listHabitsFlow(ctx, user)
	case choiceCheckoff:
		return checkOffFlow(ctx, user)
	case choiceSummary:
		return summaryFlow(ctx, user)
	case choiceHistory:
		return historyFlow(ctx, user)
	case choiceFilter:
		return filterFlow(ctx, user)
	case choiceLongest:
		return longestFlow(ctx, user)
	case choiceLongestFor:
		return longestForFlow(ctx, user)
	case choiceDelete:
		return deleteHabitFlow(ctx, user)
	}
	return fmt.Errorf("invalid choice %q", choice)
}

// signIn prompts for name and email, reusing an existing account with that
// email instead of tripping the unique constraint.
func signIn(ctx *Context) (models.User, error) {
	var name, email string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Enter your name").Value(&name),
		huh.NewInput().Title("Enter your email").Value(&email),
	))
	if err := form.Run(); err != nil {
		return models.User{}, err
	}

	if user, err := ctx.Store.GetUserByEmail(email); err == nil {
		fmt.Printf("Welcome back, %s.\n", user.Name)
		return user, nil
	}

	id, err := ctx.Store.AddUser(name, email)
	if err != nil {
		return models.User{}, err
	}
	logger.Info("created account", "id", id, "email", email)
	return models.User{ID: id, Name: name, Email: email}, nil
}

func addHabitFlow(ctx *Context, user models.User) error {
	var (
		name, description, goal, reminder string
		startDate                         = time.Now().Format(constants.DateFormat)
		periodicity                       = constants.DefaultPeriodicity
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Habit name").Value(&name),
		huh.NewInput().Title("Description").Value(&description),
		huh.NewInput().Title("Goal").Value(&goal),
		huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(&startDate),
		huh.NewSelect[string]().
			Title("Periodicity").
			Options(
				huh.NewOption("Daily", string(models.PeriodicityDaily)),
				huh.NewOption("Weekly", string(models.PeriodicityWeekly)),
				huh.NewOption("Monthly", string(models.PeriodicityMonthly)),
			).
			Value(&periodicity),
		huh.NewInput().Title("Reminder time (HH:MM, optional)").Value(&reminder),
	))
	if err := form.Run(); err != nil {
		return err
	}

	habit, err := models.NewHabitFromForm(name, description, goal, startDate, periodicity, reminder)
	if err != nil {
		return err
	}
	habit.UserID = user.ID

	id, err := ctx.Store.AddHabit(habit)
	if err != nil {
		return err
	}

	fmt.Printf("Saved habit %q (id=%d).\n", habit.Name, id)
	return nil
}

func listHabitsFlow(ctx *Context, user models.User) error {
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

// pickHabit shows a selection list over the user's habits and returns the
// chosen one.
func pickHabit(rows []models.Habit, title string) (models.Habit, error) {
	options := make([]huh.Option[int64], 0, len(rows))
	for _, h := range rows {
		label := fmt.Sprintf("%s (%s, streak=%d)", h.Name, h.Periodicity, h.Streak)
		options = append(options, huh.NewOption(label, h.ID))
	}

	var id int64
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int64]().Title(title).Options(options...).Value(&id),
	))
	if err := form.Run(); err != nil {
		return models.Habit{}, err
	}

	return FindHabit(rows, id)
}

func checkOffFlow(ctx *Context, user models.User) error {
	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("You have no habits to check off.")
		return nil
	}

	habit, err := pickHabit(habits, "Which habit did you complete?")
	if err != nil {
		return err
	}

	now := time.Now()
	updated, err := CheckOffHabit(ctx, habit, now.UTC(), now.Format(time.RFC3339))
	if err != nil {
		return err
	}

	fmt.Printf("Checked off %q. Current streak: %d\n", updated.Name, updated.Streak)
	return nil
}

func summaryFlow(ctx *Context, user models.User) error {
	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}

	PrintSummary(habits)
	return nil
}

func historyFlow(ctx *Context, user models.User) error {
	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	habit, err := pickHabit(habits, "Show history for which habit?")
	if err != nil {
		return err
	}

	history, err := ctx.Store.GetCompletions(habit.ID, constants.DefaultHistoryLimit)
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

func filterFlow(ctx *Context, user models.User) error {
	var periodicity string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which periodicity?").
			Options(
				huh.NewOption("Daily", string(models.PeriodicityDaily)),
				huh.NewOption("Weekly", string(models.PeriodicityWeekly)),
				huh.NewOption("Monthly", string(models.PeriodicityMonthly)),
			).
			Value(&periodicity),
	))
	if err := form.Run(); err != nil {
		return err
	}

	p, err := models.ParsePeriodicity(periodicity)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}

	matches := analytics.ListByPeriodicity(habits, p)
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

func longestFlow(ctx *Context, user models.User) error {
	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}

	habitID, longest, ok := analytics.LongestStreakOverall(habits)
	if !ok {
		fmt.Println("No habits yet.")
		return nil
	}

	fmt.Printf("Longest streak: %d (habit #%d)\n", longest, habitID)
	return nil
}

func longestForFlow(ctx *Context, user models.User) error {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Enter habit id").Value(&raw),
	))
	if err := form.Run(); err != nil {
		return err
	}

	habitID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("please enter a number")
	}

	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Longest streak for habit #%d: %d\n", habitID, analytics.LongestStreakFor(habits, habitID))
	return nil
}

func deleteHabitFlow(ctx *Context, user models.User) error {
	habits, err := ctx.Store.GetHabitsByUser(user.ID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("You have no habits to delete.")
		return nil
	}

	habit, err := pickHabit(habits, "Which habit do you want to delete?")
	if err != nil {
		return err
	}

	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q and its completion history?", habit.Name)).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q.\n", habit.Name)
	return nil
}
