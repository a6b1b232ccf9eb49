package scoring

import (
	"errors"
	"testing"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
)

func isiAnswers(labels map[string]string) map[string]string {
	return labels
}

func TestInsomniaSeverityIndex(t *testing.T) {
	tests := []struct {
		name         string
		answers      map[string]string
		wantTotal    int
		wantAnswered int
	}{
		{
			name: "all none",
			answers: isiAnswers(map[string]string{
				wellnessTypes.QUESTION_KEY_FALLING_ASLEEP:       "None",
				wellnessTypes.QUESTION_KEY_STAYING_ASLEEP:       "None",
				wellnessTypes.QUESTION_KEY_EARLY_WAKING:         "None",
				wellnessTypes.QUESTION_KEY_SLEEP_SATISFACTION:   "Very Satisfied",
				wellnessTypes.QUESTION_KEY_NOTICEABLE_TO_OTHERS: "Not Noticeable",
				wellnessTypes.QUESTION_KEY_WORRY_ABOUT_SLEEP:    "Never",
				wellnessTypes.QUESTION_KEY_DAILY_INTERFERENCE:   "None",
			}),
			wantTotal:    7,
			wantAnswered: 7,
		},
		{
			name: "skipped items excluded from sum",
			answers: isiAnswers(map[string]string{
				wellnessTypes.QUESTION_KEY_FALLING_ASLEEP: "Moderate",
				wellnessTypes.QUESTION_KEY_STAYING_ASLEEP: "Moderate",
				wellnessTypes.QUESTION_KEY_EARLY_WAKING:   "Moderate",
			}),
			wantTotal:    9,
			wantAnswered: 3,
		},
		{
			name:         "nothing answered",
			answers:      nil,
			wantTotal:    0,
			wantAnswered: 0,
		},
		{
			name: "unknown labels count as skipped",
			answers: isiAnswers(map[string]string{
				wellnessTypes.QUESTION_KEY_FALLING_ASLEEP: "Severe",
				wellnessTypes.QUESTION_KEY_STAYING_ASLEEP: "something else",
			}),
			wantTotal:    4,
			wantAnswered: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			total, answered := InsomniaSeverityIndex(test.answers)
			if total != test.wantTotal {
				t.Errorf("total = %d, want %d", total, test.wantTotal)
			}
			if answered != test.wantAnswered {
				t.Errorf("answered = %d, want %d", answered, test.wantAnswered)
			}
		})
	}
}

func TestHeightMeters(t *testing.T) {
	tests := []struct {
		value      string
		unit       string
		want       float64
		shouldFail bool
	}{
		{"175", "cm", 1.75, false},
		{"70", "inches", 1.778, false},
		{"70", "in", 1.778, false},
		{"", "cm", 0, true},
		{"tall", "cm", 0, true},
	}

	for _, test := range tests {
		got, err := HeightMeters(test.value, test.unit)
		if test.shouldFail {
			if err == nil {
				t.Errorf("HeightMeters(%q, %q): expected error, got %f", test.value, test.unit, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("HeightMeters(%q, %q): unexpected error %v", test.value, test.unit, err)
			continue
		}
		if diff := got - test.want; diff > 0.0001 || diff < -0.0001 {
			t.Errorf("HeightMeters(%q, %q) = %f, want %f", test.value, test.unit, got, test.want)
		}
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		weight       string
		unit         string
		heightMeters float64
		want         int
		shouldFail   bool
	}{
		{"70", "kgs", 1.75, 23, false},
		{"154", "lbs", 1.75, 23, false},
		{"100", "kgs", 1.75, 33, false},
		{"seventy", "kgs", 1.75, 0, true},
		{"70", "kgs", 0, 0, true},
		{"70", "kgs", -1.75, 0, true},
	}

	for _, test := range tests {
		got, err := BMI(test.weight, test.unit, test.heightMeters)
		if test.shouldFail {
			if err == nil {
				t.Errorf("BMI(%q, %q, %f): expected error, got %d", test.weight, test.unit, test.heightMeters, got)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("BMI(%q, %q, %f): error should wrap ErrInvalidInput", test.weight, test.unit, test.heightMeters)
			}
			continue
		}
		if err != nil {
			t.Errorf("BMI(%q, %q, %f): unexpected error %v", test.weight, test.unit, test.heightMeters, err)
			continue
		}
		if got != test.want {
			t.Errorf("BMI(%q, %q, %f) = %d, want %d", test.weight, test.unit, test.heightMeters, got, test.want)
		}
	}
}

func intPtr(v int) *int { return &v }

func TestSleepApneaRisk(t *testing.T) {
	tests := []struct {
		name          string
		snore         int
		tired         int
		stopBreathing int
		bmi           *int
		want          int
	}{
		{"observed stop dominates", 1, 1, 2, nil, wellnessTypes.RISK_HIGH},
		{"observed stop dominates regardless of other inputs", 5, 5, 3, intPtr(30), wellnessTypes.RISK_HIGH},
		{"snoring and tired", 3, 3, 1, nil, wellnessTypes.RISK_ELEVATED},
		{"snoring with high bmi", 3, 1, 1, intPtr(25), wellnessTypes.RISK_ELEVATED},
		{"tired with high bmi", 1, 4, 1, intPtr(27), wellnessTypes.RISK_ELEVATED},
		{"snoring with unknown bmi", 3, 1, 1, nil, wellnessTypes.RISK_LOW},
		{"snoring with normal bmi", 3, 1, 1, intPtr(22), wellnessTypes.RISK_LOW},
		{"no symptoms", 1, 1, 1, intPtr(30), wellnessTypes.RISK_LOW},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SleepApneaRisk(test.snore, test.tired, test.stopBreathing, test.bmi)
			if got != test.want {
				t.Errorf("SleepApneaRisk = %d, want %d", got, test.want)
			}
		})
	}
}

func TestSleepEfficiency(t *testing.T) {
	tests := []struct {
		asleep     int
		latency    int
		awake      int
		want       int
		shouldFail bool
	}{
		{420, 30, 30, 88, false}, // 420/480
		{480, 0, 0, 100, false},
		{240, 120, 120, 50, false},
		{0, 0, 0, 0, true},
		{0, 30, 0, 0, false},
	}

	for _, test := range tests {
		got, err := SleepEfficiency(test.asleep, test.latency, test.awake)
		if test.shouldFail {
			if err == nil {
				t.Errorf("SleepEfficiency(%d, %d, %d): expected error", test.asleep, test.latency, test.awake)
			}
			continue
		}
		if err != nil {
			t.Errorf("SleepEfficiency(%d, %d, %d): unexpected error %v", test.asleep, test.latency, test.awake, err)
			continue
		}
		if got != test.want {
			t.Errorf("SleepEfficiency(%d, %d, %d) = %d, want %d", test.asleep, test.latency, test.awake, got, test.want)
		}
	}
}

func TestDietScore(t *testing.T) {
	tests := []struct {
		caffeinated string
		sugary      string
		want        int
	}{
		{"3", "2", wellnessTypes.RISK_HIGH},
		{"1", "0", wellnessTypes.RISK_LOW},
		{"1", "1", wellnessTypes.RISK_ELEVATED},
		{"2", "1", wellnessTypes.RISK_ELEVATED},
		{"0", "0", wellnessTypes.RISK_LOW},
		{"", "", wellnessTypes.RISK_LOW},
		{"many", "2", wellnessTypes.RISK_ELEVATED},
	}

	for _, test := range tests {
		if got := DietScore(test.caffeinated, test.sugary); got != test.want {
			t.Errorf("DietScore(%q, %q) = %d, want %d", test.caffeinated, test.sugary, got, test.want)
		}
	}
}

func TestPhysicalActivityScore(t *testing.T) {
	tests := []struct {
		hours      string
		minutes    string
		want       int
		shouldFail bool
	}{
		{"0", "50", wellnessTypes.RISK_HIGH, false},
		{"0", "51", wellnessTypes.RISK_ELEVATED, false},
		{"1", "40", wellnessTypes.RISK_ELEVATED, false},
		{"2", "0", wellnessTypes.RISK_LOW, false},
		{"-1", "0", 0, true},
		{"0", "60", 0, true},
		{"0", "-5", 0, true},
		{"", "30", 0, true},
	}

	for _, test := range tests {
		got, err := PhysicalActivityScore(test.hours, test.minutes)
		if test.shouldFail {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("PhysicalActivityScore(%q, %q): expected ErrInvalidInput, got %v", test.hours, test.minutes, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("PhysicalActivityScore(%q, %q): unexpected error %v", test.hours, test.minutes, err)
			continue
		}
		if got != test.want {
			t.Errorf("PhysicalActivityScore(%q, %q) = %d, want %d", test.hours, test.minutes, got, test.want)
		}
	}
}

func TestStressScore(t *testing.T) {
	tests := []struct {
		severity int
		want     int
	}{
		{Unanswered, wellnessTypes.RISK_LOW},
		{1, wellnessTypes.RISK_LOW},
		{2, wellnessTypes.RISK_ELEVATED},
		{3, wellnessTypes.RISK_ELEVATED},
		{4, wellnessTypes.RISK_HIGH},
		{5, wellnessTypes.RISK_HIGH},
	}

	for _, test := range tests {
		if got := StressScore(test.severity); got != test.want {
			t.Errorf("StressScore(%d) = %d, want %d", test.severity, got, test.want)
		}
	}
}
