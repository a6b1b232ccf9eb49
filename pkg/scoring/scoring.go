package scoring

import (
	"errors"
	"math"
	"strconv"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
)

// ErrInvalidInput is returned when a numeric form field cannot be used for
// a calculation. All scoring functions report failures this way instead of
// panicking, since they run opportunistically over partially entered forms.
var ErrInvalidInput = errors.New("invalid input")

const (
	inchesToMeters = 0.0254
	poundsToKg     = 0.453592
)

// ISI question keys in questionnaire order.
var isiQuestionKeys = []string{
	wellnessTypes.QUESTION_KEY_FALLING_ASLEEP,
	wellnessTypes.QUESTION_KEY_STAYING_ASLEEP,
	wellnessTypes.QUESTION_KEY_EARLY_WAKING,
	wellnessTypes.QUESTION_KEY_SLEEP_SATISFACTION,
	wellnessTypes.QUESTION_KEY_NOTICEABLE_TO_OTHERS,
	wellnessTypes.QUESTION_KEY_WORRY_ABOUT_SLEEP,
	wellnessTypes.QUESTION_KEY_DAILY_INTERFERENCE,
}

// InsomniaSeverityIndex sums the severities of the seven ISI questions.
// Skipped or unrecognized answers are excluded from the sum entirely, not
// counted as zero, so the total covers answered items only. The answered
// count is returned alongside the total so consumers can tell a low score
// from an under-answered questionnaire.
func InsomniaSeverityIndex(answers map[string]string) (total int, answered int) {
	for _, key := range isiQuestionKeys {
		v := SeverityValue(answers[key])
		if v == Unanswered {
			continue
		}
		total += v
		answered++
	}
	return total, answered
}

// ISIBand returns the clinical interpretation band for a full seven-item
// total. Informational only; with skipped items the total is not comparable
// to the clinical scale.
func ISIBand(total int) string {
	switch {
	case total <= 7:
		return "no clinically significant insomnia"
	case total <= 14:
		return "subthreshold insomnia"
	case total <= 21:
		return "moderate clinical insomnia"
	default:
		return "severe clinical insomnia"
	}
}

// HeightMeters parses a height form value and converts it to meters.
// The unit is inches when it starts with "in", centimeters otherwise.
func HeightMeters(value string, unit string) (float64, error) {
	h, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, ErrInvalidInput
	}
	if len(unit) >= 2 && unit[:2] == "in" {
		return h * inchesToMeters, nil
	}
	return h / 100, nil
}

// WeightKg parses a weight form value and converts it to kilograms. The
// unit is pounds when it starts with "lb", kilograms otherwise.
func WeightKg(value string, unit string) (float64, error) {
	w, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, ErrInvalidInput
	}
	if len(unit) >= 2 && unit[:2] == "lb" {
		w = w * poundsToKg
	}
	return w, nil
}

// BMI computes the rounded body mass index from a weight form value and a
// height in meters.
func BMI(weightValue string, weightUnit string, heightMeters float64) (int, error) {
	w, err := WeightKg(weightValue, weightUnit)
	if err != nil {
		return 0, ErrInvalidInput
	}
	if heightMeters <= 0 {
		return 0, ErrInvalidInput
	}
	return int(math.Round(w / (heightMeters * heightMeters))), nil
}

// SleepApneaRisk bands the apnea screening answers. Any observed breathing
// stop dominates; otherwise loud snoring and daytime tiredness combine with
// an elevated BMI. A nil BMI fails the BMI clause rather than erroring.
func SleepApneaRisk(snoreScore, tiredScore, stopBreathingScore int, bmi *int) int {
	if stopBreathingScore != 1 {
		return wellnessTypes.RISK_HIGH
	}
	overweight := bmi != nil && *bmi >= 25
	if (snoreScore >= 3 && tiredScore >= 3) ||
		((snoreScore >= 3 || tiredScore >= 3) && overweight) {
		return wellnessTypes.RISK_ELEVATED
	}
	return wellnessTypes.RISK_LOW
}

// SleepEfficiency is the percentage of time in bed spent asleep. The
// denominator is the full time in bed: sleep plus sleep latency plus time
// awake after sleep onset.
func SleepEfficiency(minutesAsleep, minutesToFallAsleep, minutesAwakeAtNight int) (int, error) {
	timeInBed := minutesAsleep + minutesToFallAsleep + minutesAwakeAtNight
	if timeInBed == 0 {
		return 0, ErrInvalidInput
	}
	return int(math.Round(100 * float64(minutesAsleep) / float64(timeInBed))), nil
}

// DietScore bands the combined caffeinated and sugary drink counts.
// Unparseable counts contribute zero, matching the partial-form contract.
func DietScore(caffeinatedPerDay string, sugaryPerDay string) int {
	total := atoiOrZero(caffeinatedPerDay) + atoiOrZero(sugaryPerDay)
	switch {
	case total > 4:
		return wellnessTypes.RISK_HIGH
	case total == 2 || total == 3:
		return wellnessTypes.RISK_ELEVATED
	default:
		return wellnessTypes.RISK_LOW
	}
}

// PhysicalActivityScore bands weekly activity duration. Less activity is a
// higher risk. Hours must be non-negative and minutes within [0,59].
func PhysicalActivityScore(hours string, minutes string) (int, error) {
	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 {
		return 0, ErrInvalidInput
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 {
		return 0, ErrInvalidInput
	}
	total := h*60 + m
	switch {
	case total <= 50:
		return wellnessTypes.RISK_HIGH, nil
	case total <= 100:
		return wellnessTypes.RISK_ELEVATED, nil
	default:
		return wellnessTypes.RISK_LOW, nil
	}
}

// StressScore bands a mapped stress severity.
func StressScore(severity int) int {
	switch {
	case severity <= 1:
		return wellnessTypes.RISK_LOW
	case severity <= 3:
		return wellnessTypes.RISK_ELEVATED
	default:
		return wellnessTypes.RISK_HIGH
	}
}

// TotalMinutes converts an hours/minutes form input into minutes.
func TotalMinutes(d wellnessTypes.DurationInput) (int, error) {
	h, err := strconv.Atoi(d.Hours)
	if err != nil || h < 0 {
		return 0, ErrInvalidInput
	}
	m, err := strconv.Atoi(d.Minutes)
	if err != nil || m < 0 || m > 59 {
		return 0, ErrInvalidInput
	}
	return h*60 + m, nil
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
