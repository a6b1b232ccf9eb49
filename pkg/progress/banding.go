package progress

// Weekly percentage bands. Like the assessment scores these are coarse
// tiers, not continuous values.
const (
	weeklyActivityTargetMinutes = 150
	weightGainThresholdKg       = 2.27 // ~5 lbs
	efficiencyTargetPct         = 85
	efficiencyDropTolerancePct  = 5
)

func trackedDaysPercentage(days int) int {
	switch {
	case days >= 3:
		return 100
	case days == 2:
		return 66
	case days == 1:
		return 33
	default:
		return 0
	}
}

// DietPercentage bands the number of days in the window with a diet rating.
func DietPercentage(daysWithRating int) int {
	return trackedDaysPercentage(daysWithRating)
}

// StressPercentage bands the number of days in the window with a stress
// rating.
func StressPercentage(daysWithRating int) int {
	return trackedDaysPercentage(daysWithRating)
}

// ActivityPercentage bands weekly activity minutes against the 150-minute
// target, giving full credit for any improvement over the previous window.
func ActivityPercentage(totalMinutes, previousTotalMinutes int) int {
	if totalMinutes >= weeklyActivityTargetMinutes || totalMinutes > previousTotalMinutes {
		return 100
	}
	if totalMinutes > 0 {
		return 50
	}
	return 0
}

// SleepEfficiencyWeeklyScore bands the window's average sleep efficiency.
// No data scores zero. Hitting the 85% target or improving on the previous
// window scores full; degrading by more than five points scores 66; a small
// degradation below target keeps partial credit.
func SleepEfficiencyWeeklyScore(avgEfficiency, previousAvgEfficiency float64, daysWithData int) int {
	if daysWithData == 0 {
		return 0
	}
	if avgEfficiency >= efficiencyTargetPct || avgEfficiency > previousAvgEfficiency {
		return 100
	}
	if previousAvgEfficiency-avgEfficiency > efficiencyDropTolerancePct {
		return 66
	}
	return 33
}

// BMITrendPercentage scores the weight trend for users who started the
// program overweight. Users with a healthy or unknown initial BMI get full
// marks regardless of weight change; the weight trend is only a program
// goal for overweight users.
func BMITrendPercentage(initialBMI *int, initialWeightKg, mostRecentWeightKg float64) int {
	if initialBMI == nil || *initialBMI < 25 {
		return 100
	}
	if mostRecentWeightKg-initialWeightKg > weightGainThresholdKg {
		return 66
	}
	return 100
}

// LessonPercentage maps weekly lesson completion to a progress percentage.
func LessonPercentage(complete bool) int {
	if complete {
		return 100
	}
	return 0
}
