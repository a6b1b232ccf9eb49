package progress

import (
	"testing"
	"time"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	umTypes "github.com/kenzieke/sleepwell-backend/pkg/user-management/types"
)

// fakeStore is an in-memory DataStore for aggregator tests.
type fakeStore struct {
	user           umTypes.User
	userErr        error
	scores         wellnessTypes.ScoreResult
	scoresErr      error
	lessonProgress wellnessTypes.LessonProgress
	lessonErr      error
	healthEntries  []wellnessTypes.DailyHealthEntry
	sleepEntries   []wellnessTypes.SleepEntry
}

func (s *fakeStore) GetUser(instanceID string, userID string) (umTypes.User, error) {
	return s.user, s.userErr
}

func (s *fakeStore) GetScoreResult(instanceID string, userID string) (wellnessTypes.ScoreResult, error) {
	return s.scores, s.scoresErr
}

func (s *fakeStore) GetLessonProgress(instanceID string, userID string) (wellnessTypes.LessonProgress, error) {
	return s.lessonProgress, s.lessonErr
}

func (s *fakeStore) FindHealthEntries(instanceID string, userID string, startDate string, endDate string) ([]wellnessTypes.DailyHealthEntry, error) {
	return filterHealth(s.healthEntries, startDate, endDate), nil
}

func (s *fakeStore) FindSleepEntries(instanceID string, userID string, startDate string, endDate string) ([]wellnessTypes.SleepEntry, error) {
	var result []wellnessTypes.SleepEntry
	for _, e := range s.sleepEntries {
		if e.Date >= startDate && e.Date <= endDate {
			result = append(result, e)
		}
	}
	return result, nil
}

func filterHealth(entries []wellnessTypes.DailyHealthEntry, startDate, endDate string) []wellnessTypes.DailyHealthEntry {
	var result []wellnessTypes.DailyHealthEntry
	for _, e := range entries {
		if e.Date >= startDate && e.Date <= endDate {
			result = append(result, e)
		}
	}
	return result
}

// fixed "now": Wednesday 2024-06-12; current window 2024-06-09..15,
// previous window 2024-06-02..08.
var testNow = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

func newTestAggregator(store DataStore) *Aggregator {
	a := NewAggregator(store)
	a.now = func() time.Time { return testNow }
	return a
}

func testUser(weeksIn int) umTypes.User {
	return umTypes.User{
		Timestamps: umTypes.Timestamps{
			CreatedAt: testNow.AddDate(0, 0, -7*weeksIn).Unix(),
		},
		Wellness: umTypes.Wellness{
			CompletedAssessment: true,
			InitialWeightKg:     100,
		},
	}
}

func TestWeeklySummaryNoData(t *testing.T) {
	store := &fakeStore{
		user:      testUser(2),
		userErr:   nil,
		scoresErr: wellnessTypes.ErrNotFound,
		lessonErr: wellnessTypes.ErrNotFound,
	}
	store.user.Wellness.InitialWeightKg = 0

	summary, err := newTestAggregator(store).WeeklySummary("default", "user-1")
	if err != nil {
		t.Fatalf("WeeklySummary failed: %v", err)
	}

	if summary.WeekNumber != 3 {
		t.Errorf("WeekNumber = %d, want 3", summary.WeekNumber)
	}
	if summary.ProgramComplete {
		t.Error("program should not be complete")
	}
	if summary.ModuleStatus != wellnessTypes.MODULE_STATUS_DUE {
		t.Errorf("ModuleStatus = %q, want due", summary.ModuleStatus)
	}
	if summary.DietPercentage != 0 || summary.StressPercentage != 0 {
		t.Errorf("diet/stress = %d/%d, want 0/0", summary.DietPercentage, summary.StressPercentage)
	}
	if summary.ActivityPercentage != 0 {
		t.Errorf("ActivityPercentage = %d, want 0", summary.ActivityPercentage)
	}
	if summary.SleepEfficiencyPercentage != 0 {
		t.Errorf("SleepEfficiencyPercentage = %d, want 0", summary.SleepEfficiencyPercentage)
	}
	if summary.BMITrendPercentage != 0 {
		t.Errorf("BMITrendPercentage = %d, want 0", summary.BMITrendPercentage)
	}
	if summary.WindowStart != "2024-06-09" || summary.WindowEnd != "2024-06-15" {
		t.Errorf("window = [%s, %s], want [2024-06-09, 2024-06-15]", summary.WindowStart, summary.WindowEnd)
	}
}

func TestWeeklySummaryMissingUser(t *testing.T) {
	store := &fakeStore{userErr: wellnessTypes.ErrNotFound}
	if _, err := newTestAggregator(store).WeeklySummary("default", "user-1"); err == nil {
		t.Fatal("expected error for missing user")
	}
}

func TestWeeklySummaryFullWeek(t *testing.T) {
	bmi := 28
	store := &fakeStore{
		user:   testUser(2),
		scores: wellnessTypes.ScoreResult{BMI: &bmi},
		lessonProgress: wellnessTypes.LessonProgress{
			Completed: map[string]bool{"1": true, "2": true, "3": true},
		},
		healthEntries: []wellnessTypes.DailyHealthEntry{
			{Date: "2024-06-09", DietRating: "Good", StressRating: "Low", ActivityMinutes: 60},
			{Date: "2024-06-10", DietRating: "Okay", StressRating: "Moderate", ActivityMinutes: 50},
			{Date: "2024-06-11", DietRating: "Good", ActivityMinutes: 45, Weight: &wellnessTypes.Measurement{Value: "99", Unit: "kgs"}},
			// previous window
			{Date: "2024-06-03", DietRating: "Good", ActivityMinutes: 30},
		},
		sleepEntries: []wellnessTypes.SleepEntry{
			{Date: "2024-06-09", MinutesAsleep: 420, MinutesToFallAsleep: 20, MinutesAwakeAtNight: 10},
			{Date: "2024-06-10", MinutesAsleep: 400, MinutesToFallAsleep: 30, MinutesAwakeAtNight: 20},
			// previous window
			{Date: "2024-06-04", MinutesAsleep: 300, MinutesToFallAsleep: 60, MinutesAwakeAtNight: 60},
		},
	}

	summary, err := newTestAggregator(store).WeeklySummary("default", "user-1")
	if err != nil {
		t.Fatalf("WeeklySummary failed: %v", err)
	}

	if summary.WeekNumber != 3 {
		t.Errorf("WeekNumber = %d, want 3", summary.WeekNumber)
	}
	if summary.ModuleStatus != wellnessTypes.MODULE_STATUS_COMPLETED {
		t.Errorf("ModuleStatus = %q, want completed", summary.ModuleStatus)
	}
	if summary.LessonPercentage != 100 {
		t.Errorf("LessonPercentage = %d, want 100", summary.LessonPercentage)
	}
	if summary.DietPercentage != 100 {
		t.Errorf("DietPercentage = %d, want 100 for 3 rated days", summary.DietPercentage)
	}
	if summary.StressPercentage != 66 {
		t.Errorf("StressPercentage = %d, want 66 for 2 rated days", summary.StressPercentage)
	}
	// 155 minutes this window meets the target.
	if summary.ActivityPercentage != 100 {
		t.Errorf("ActivityPercentage = %d, want 100", summary.ActivityPercentage)
	}
	// Averages 93 and 89 this window vs 71 previous: target met.
	if summary.SleepEfficiencyPercentage != 100 {
		t.Errorf("SleepEfficiencyPercentage = %d, want 100", summary.SleepEfficiencyPercentage)
	}
	// Initial BMI 28 at 100kg, latest tracked weight 99kg: no gain.
	if summary.BMITrendPercentage != 100 {
		t.Errorf("BMITrendPercentage = %d, want 100", summary.BMITrendPercentage)
	}
}

func TestWeeklySummaryWeightGainPenalty(t *testing.T) {
	bmi := 28
	store := &fakeStore{
		user:   testUser(1),
		scores: wellnessTypes.ScoreResult{BMI: &bmi},
		healthEntries: []wellnessTypes.DailyHealthEntry{
			{Date: "2024-06-10", Weight: &wellnessTypes.Measurement{Value: "103", Unit: "kgs"}},
		},
		lessonErr: wellnessTypes.ErrNotFound,
	}

	summary, err := newTestAggregator(store).WeeklySummary("default", "user-1")
	if err != nil {
		t.Fatalf("WeeklySummary failed: %v", err)
	}
	if summary.BMITrendPercentage != 66 {
		t.Errorf("BMITrendPercentage = %d, want 66 after >2.27kg gain", summary.BMITrendPercentage)
	}
}

func TestWeeklySummaryProgramComplete(t *testing.T) {
	store := &fakeStore{
		user:      testUser(13),
		scoresErr: wellnessTypes.ErrNotFound,
		lessonErr: wellnessTypes.ErrNotFound,
	}

	summary, err := newTestAggregator(store).WeeklySummary("default", "user-1")
	if err != nil {
		t.Fatalf("WeeklySummary failed: %v", err)
	}
	if summary.WeekNumber != 12 {
		t.Errorf("WeekNumber = %d, want 12 (clamped)", summary.WeekNumber)
	}
	if !summary.ProgramComplete {
		t.Error("ProgramComplete should be true")
	}
	if summary.ModuleStatus != wellnessTypes.MODULE_STATUS_NOT_DUE {
		t.Errorf("ModuleStatus = %q, want not_due after program end", summary.ModuleStatus)
	}
}
