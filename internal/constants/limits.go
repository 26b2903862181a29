package constants

const (
	// RestDayTaskCap is the hard per-day block cap on a rest day,
	// independent of mood
	RestDayTaskCap = 1
	// DefaultTaskLimit applies when a day has no (or an unknown) mood
	DefaultTaskLimit = 5

	// ForceRestLookback is how many prior days the forced-rest rule inspects
	ForceRestLookback = 3
	// ForceRestThreshold is how many of those must be hard days to force rest
	ForceRestThreshold = 2
)

// Weekly balance score weights and tier boundaries. The score is a
// saturating weighted sum capped at WeeklyScoreMax.
const (
	WeeklyWindowDays = 7

	ScoreWeightDayLogged     = 10
	ScoreWeightMoodDay       = 8
	ScoreWeightCompletedTask = 2
	WeeklyScoreMax           = 100

	// Tier lower bounds are inclusive: 40 and 70 belong to the higher tier.
	TierBalancedMin = 40
	TierGentleMin   = 70
)

const (
	RestDayMessage   = "Today is a recovery day. One small thing is enough."
	GentleDayMessage = "Yesterday was hard. Be gentle with yourself today."

	HardWeekMessage     = "It was a hard week. Showing up at all counts."
	BalancedWeekMessage = "A balanced week, with ups and downs."
	GentleWeekMessage   = "You were kind to yourself this week."
)
