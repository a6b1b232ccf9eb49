package progress

import (
	"errors"
	"log/slog"
	"time"

	"github.com/kenzieke/sleepwell-backend/pkg/scoring"
	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	umTypes "github.com/kenzieke/sleepwell-backend/pkg/user-management/types"
)

// DataStore is the slice of the wellness database the aggregator reads.
// Lookups return wellnessTypes.ErrNotFound when no document exists yet.
type DataStore interface {
	GetUser(instanceID string, userID string) (umTypes.User, error)
	GetScoreResult(instanceID string, userID string) (wellnessTypes.ScoreResult, error)
	GetLessonProgress(instanceID string, userID string) (wellnessTypes.LessonProgress, error)
	FindHealthEntries(instanceID string, userID string, startDate string, endDate string) ([]wellnessTypes.DailyHealthEntry, error)
	FindSleepEntries(instanceID string, userID string, startDate string, endDate string) ([]wellnessTypes.SleepEntry, error)
}

// Aggregator computes weekly progress summaries from the document store.
// It performs several independent reads with no transactional guarantee
// between them and tolerates whatever partial data it finds: a missing
// document defaults its aggregates to zero or empty.
type Aggregator struct {
	store DataStore
	now   func() time.Time
}

func NewAggregator(store DataStore) *Aggregator {
	return &Aggregator{
		store: store,
		now:   time.Now,
	}
}

// WeeklySummary computes the per-category progress percentages for the
// user's current program week. Only a missing user document is an error;
// everything else degrades to zero scores.
func (a *Aggregator) WeeklySummary(instanceID string, userID string) (wellnessTypes.WeeklySummary, error) {
	user, err := a.store.GetUser(instanceID, userID)
	if err != nil {
		return wellnessTypes.WeeklySummary{}, err
	}

	now := a.now()
	createdAt := time.Unix(user.Timestamps.CreatedAt, 0)

	summary := wellnessTypes.WeeklySummary{
		UserID:          userID,
		WeekNumber:      CurrentWeekNumber(createdAt, now),
		ProgramComplete: ProgramComplete(createdAt, now),
	}

	window := WeekWindow(now)
	previousWindow := PreviousWeekWindow(now)
	summary.WindowStart = window.Start
	summary.WindowEnd = window.End

	lessonProgress := a.lessonProgress(instanceID, userID)
	lessonComplete := lessonProgress.IsLessonComplete(summary.WeekNumber)
	summary.LessonPercentage = LessonPercentage(lessonComplete)
	summary.ModuleStatus = moduleStatus(summary.ProgramComplete, lessonComplete)

	entries := a.healthEntries(instanceID, userID, window)
	previousEntries := a.healthEntries(instanceID, userID, previousWindow)

	summary.DietPercentage = DietPercentage(countDays(entries, func(e wellnessTypes.DailyHealthEntry) bool {
		return e.DietRating != ""
	}))
	summary.StressPercentage = StressPercentage(countDays(entries, func(e wellnessTypes.DailyHealthEntry) bool {
		return e.StressRating != ""
	}))
	summary.ActivityPercentage = ActivityPercentage(
		totalActivityMinutes(entries),
		totalActivityMinutes(previousEntries),
	)

	avg, daysWithData := a.averageSleepEfficiency(instanceID, userID, window)
	previousAvg, _ := a.averageSleepEfficiency(instanceID, userID, previousWindow)
	summary.SleepEfficiencyPercentage = SleepEfficiencyWeeklyScore(avg, previousAvg, daysWithData)

	summary.BMITrendPercentage = a.bmiTrend(instanceID, userID, user, entries, previousEntries)

	return summary, nil
}

func (a *Aggregator) lessonProgress(instanceID string, userID string) wellnessTypes.LessonProgress {
	lp, err := a.store.GetLessonProgress(instanceID, userID)
	if err != nil {
		if !errors.Is(err, wellnessTypes.ErrNotFound) {
			slog.Warn("failed to load lesson progress", slog.String("userID", userID), slog.String("error", err.Error()))
		}
		return wellnessTypes.LessonProgress{}
	}
	return lp
}

func (a *Aggregator) healthEntries(instanceID string, userID string, window Window) []wellnessTypes.DailyHealthEntry {
	entries, err := a.store.FindHealthEntries(instanceID, userID, window.Start, window.End)
	if err != nil {
		if !errors.Is(err, wellnessTypes.ErrNotFound) {
			slog.Warn("failed to load health entries", slog.String("userID", userID), slog.String("error", err.Error()))
		}
		return nil
	}
	return entries
}

// averageSleepEfficiency computes per-day efficiencies with the scorer's
// formula and averages them. Days without a sleep entry, or whose entry
// yields no valid efficiency, contribute neither to the average nor to the
// day count.
func (a *Aggregator) averageSleepEfficiency(instanceID string, userID string, window Window) (avg float64, daysWithData int) {
	entries, err := a.store.FindSleepEntries(instanceID, userID, window.Start, window.End)
	if err != nil {
		if !errors.Is(err, wellnessTypes.ErrNotFound) {
			slog.Warn("failed to load sleep entries", slog.String("userID", userID), slog.String("error", err.Error()))
		}
		return 0, 0
	}

	sum := 0
	for _, entry := range entries {
		eff, err := scoring.SleepEfficiency(entry.MinutesAsleep, entry.MinutesToFallAsleep, entry.MinutesAwakeAtNight)
		if err != nil {
			continue
		}
		sum += eff
		daysWithData++
	}
	if daysWithData == 0 {
		return 0, 0
	}
	return float64(sum) / float64(daysWithData), daysWithData
}

// bmiTrend scores the weight trend against the baseline assessment. With no
// baseline weight the category cannot be evaluated and scores zero; with a
// baseline but no tracked weight this week, the baseline stands in for the
// most recent weight.
func (a *Aggregator) bmiTrend(instanceID string, userID string, user umTypes.User, entries, previousEntries []wellnessTypes.DailyHealthEntry) int {
	if user.Wellness.InitialWeightKg <= 0 {
		return 0
	}

	var initialBMI *int
	scores, err := a.store.GetScoreResult(instanceID, userID)
	if err != nil {
		if !errors.Is(err, wellnessTypes.ErrNotFound) {
			slog.Warn("failed to load score result", slog.String("userID", userID), slog.String("error", err.Error()))
		}
	} else {
		initialBMI = scores.BMI
	}

	mostRecent := user.Wellness.InitialWeightKg
	if kg, ok := latestTrackedWeightKg(entries); ok {
		mostRecent = kg
	} else if kg, ok := latestTrackedWeightKg(previousEntries); ok {
		mostRecent = kg
	}

	return BMITrendPercentage(initialBMI, user.Wellness.InitialWeightKg, mostRecent)
}

func latestTrackedWeightKg(entries []wellnessTypes.DailyHealthEntry) (float64, bool) {
	latestDate := ""
	latestKg := 0.0
	found := false
	for _, entry := range entries {
		if entry.Weight == nil {
			continue
		}
		kg, err := scoring.WeightKg(entry.Weight.Value, entry.Weight.Unit)
		if err != nil {
			continue
		}
		if entry.Date >= latestDate {
			latestDate = entry.Date
			latestKg = kg
			found = true
		}
	}
	return latestKg, found
}

func countDays(entries []wellnessTypes.DailyHealthEntry, match func(wellnessTypes.DailyHealthEntry) bool) int {
	n := 0
	for _, entry := range entries {
		if match(entry) {
			n++
		}
	}
	return n
}

func totalActivityMinutes(entries []wellnessTypes.DailyHealthEntry) int {
	total := 0
	for _, entry := range entries {
		total += entry.ActivityMinutes
	}
	return total
}

// moduleStatus derives the per-week module state: once the program is over
// nothing is due anymore, otherwise the current week's lesson is either
// still due or already completed. Completion is monotonic, so there is no
// transition back from completed.
func moduleStatus(programComplete bool, lessonComplete bool) string {
	if lessonComplete {
		return wellnessTypes.MODULE_STATUS_COMPLETED
	}
	if programComplete {
		return wellnessTypes.MODULE_STATUS_NOT_DUE
	}
	return wellnessTypes.MODULE_STATUS_DUE
}
