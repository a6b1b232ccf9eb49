package scoring

import (
	"time"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
)

// ScoreAssessment converts one assessment response into the persisted score
// document. Pure and deterministic: all I/O and error surfacing stays with
// the caller. Categories whose inputs are missing or unparseable end up nil
// (BMI, sleep efficiency) or fall back to their low-risk defaults, never as
// an error: the assessment can be scored however incomplete it is.
func ScoreAssessment(resp wellnessTypes.AssessmentResponse, now time.Time) wellnessTypes.ScoreResult {
	result := wellnessTypes.ScoreResult{
		UserID:    resp.UserID,
		CreatedAt: now.Unix(),
	}

	result.InsomniaSeverityIndex, result.AnsweredItems = InsomniaSeverityIndex(resp.Answers)

	var bmi *int
	if heightMeters, err := HeightMeters(resp.Height.Value, resp.Height.Unit); err == nil {
		if v, err := BMI(resp.Weight.Value, resp.Weight.Unit, heightMeters); err == nil {
			bmi = &v
		}
	}
	result.BMI = bmi

	snore := SeverityValue(resp.Answers[wellnessTypes.QUESTION_KEY_SNORING])
	tired := SeverityValue(resp.Answers[wellnessTypes.QUESTION_KEY_TIREDNESS])
	stopBreathing := SeverityValue(resp.Answers[wellnessTypes.QUESTION_KEY_STOP_BREATHING])
	if stopBreathing == Unanswered {
		// No observation is not an observed event.
		stopBreathing = 1
	}
	result.SleepApneaRisk = SleepApneaRisk(snore, tired, stopBreathing, bmi)

	if asleep, err := TotalMinutes(resp.TimeAsleep); err == nil {
		latency, latencyErr := TotalMinutes(resp.TimeToFallAsleep)
		awake, awakeErr := TotalMinutes(resp.TimeAwakeAfterWake)
		if latencyErr == nil && awakeErr == nil {
			if eff, err := SleepEfficiency(asleep, latency, awake); err == nil {
				result.SleepEfficiency = &eff
			}
		}
	}

	result.Diet = DietScore(resp.CaffeinatedDrinksPerDay, resp.SugaryDrinksPerDay)

	activity, err := PhysicalActivityScore(resp.PhysicalActivity.Hours, resp.PhysicalActivity.Minutes)
	if err != nil {
		// Treat missing activity inputs as the highest-risk band rather
		// than refusing to score the assessment.
		activity = wellnessTypes.RISK_HIGH
	}
	result.PhysicalActivity = activity

	result.Stress = StressScore(SeverityValue(resp.Answers[wellnessTypes.QUESTION_KEY_STRESS_LEVEL]))

	return result
}
