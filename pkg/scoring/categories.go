package scoring

import (
	"strconv"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
)

const scoreNotAvailable = "Not available"

func riskLabel(score int) string {
	switch score {
	case wellnessTypes.RISK_LOW:
		return "Low"
	case wellnessTypes.RISK_ELEVATED:
		return "Medium"
	default:
		return "High"
	}
}

func riskIndicator(score int) string {
	switch score {
	case wellnessTypes.RISK_LOW:
		return "green"
	case wellnessTypes.RISK_ELEVATED:
		return "yellow"
	default:
		return "red"
	}
}

// CategoryDetails renders a score result into the per-category display
// contract used by the results screen. Unavailable continuous scores (BMI,
// sleep efficiency) render as "Not available" instead of erroring.
func CategoryDetails(result wellnessTypes.ScoreResult) []wellnessTypes.CategoryDetail {
	details := []wellnessTypes.CategoryDetail{
		{
			Category:    "Insomnia Severity Index",
			Score:       strconv.Itoa(result.InsomniaSeverityIndex),
			Indicator:   "scale",
			Description: ISIBand(result.InsomniaSeverityIndex),
		},
		{
			Category:    "Sleep Apnea Risk",
			Score:       riskLabel(result.SleepApneaRisk),
			Indicator:   riskIndicator(result.SleepApneaRisk),
			Description: "Risk of obstructive sleep apnea from snoring, tiredness and BMI",
		},
		bmiDetail(result.BMI),
		sleepEfficiencyDetail(result.SleepEfficiency),
		{
			Category:    "Diet",
			Score:       riskLabel(result.Diet),
			Indicator:   riskIndicator(result.Diet),
			Description: "Daily caffeinated and sugary drink intake",
		},
		{
			Category:    "Physical Activity",
			Score:       riskLabel(result.PhysicalActivity),
			Indicator:   riskIndicator(result.PhysicalActivity),
			Description: "Weekly minutes of physical activity",
		},
		{
			Category:    "Stress",
			Score:       riskLabel(result.Stress),
			Indicator:   riskIndicator(result.Stress),
			Description: "Self-reported stress level",
		},
	}
	return details
}

func bmiDetail(bmi *int) wellnessTypes.CategoryDetail {
	d := wellnessTypes.CategoryDetail{
		Category:    "BMI",
		Score:       scoreNotAvailable,
		Indicator:   "scale",
		Description: "Body mass index from reported height and weight",
	}
	if bmi != nil {
		d.Score = strconv.Itoa(*bmi)
	}
	return d
}

func sleepEfficiencyDetail(eff *int) wellnessTypes.CategoryDetail {
	d := wellnessTypes.CategoryDetail{
		Category:    "Sleep Efficiency",
		Score:       scoreNotAvailable,
		Indicator:   "scale",
		Description: "Share of time in bed spent asleep",
	}
	if eff != nil {
		d.Score = strconv.Itoa(*eff) + "%"
	}
	return d
}
