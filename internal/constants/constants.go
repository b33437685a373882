package constants

// Pagination bounds for project task listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Estimated complexity range for tasks.
const (
	MinEstimatedComplexity = 1
	MaxEstimatedComplexity = 5
)

// Upcoming-tasks window, in days, as enforced at the API boundary.
const (
	DefaultUpcomingDays = 7
	MinUpcomingDays     = 1
	MaxUpcomingDays     = 30
)
