package constants

const (
	AppName = "habitual"

	// DateFormat is the calendar-date layout used everywhere a day crosses
	// the model/storage boundary.
	DateFormat = "2006-01-02"
	// TimeFormat is the layout for reminder times of day.
	TimeFormat = "15:04"

	DefaultPeriodicity = "daily"

	// DefaultHistoryLimit caps how many completion timestamps the history
	// views request from the store.
	DefaultHistoryLimit = 20
)
