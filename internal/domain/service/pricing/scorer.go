package pricing

import (
	"fmt"
	"math"

	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
)

type scoreBand struct {
	below float64
	score int
	tier  value.ConfidenceTier
}

var scoreBands = []scoreBand{ //nolint:gochecknoglobals
	{below: 0.05, score: 95, tier: value.ConfidenceExcellent}, //nolint:mnd
	{below: 0.10, score: 85, tier: value.ConfidenceGood},      //nolint:mnd
	{below: 0.15, score: 75, tier: value.ConfidenceFair},      //nolint:mnd
}

const (
	weakScore = 65

	closeDiffPct = 5
	warnDiffPct  = 10
)

// Score оценивает относительное отклонение оптимальной цены от целевой.
func Score(optimal, target float64) (deviation float64, score int, tier value.ConfidenceTier) {
	deviation = math.Abs(optimal-target) / target

	for _, band := range scoreBands {
		if deviation < band.below {
			return deviation, band.score, band.tier
		}
	}

	return deviation, weakScore, value.ConfidenceWeak
}

// CompareToTarget текстовое сравнение оптимальной цены с целевой.
func CompareToTarget(optimal, target float64) entity.TargetComparison {
	diff := (optimal - target) / target * 100
	absDiff := math.Abs(diff)

	var text string
	switch {
	case absDiff < closeDiffPct:
		text = "close to"
	case diff > 0:
		text = fmt.Sprintf("%.1f%% higher than", absDiff)
	default:
		text = fmt.Sprintf("%.1f%% lower than", absDiff)
	}

	severity := value.SeverityOK
	switch {
	case absDiff > warnDiffPct:
		severity = value.SeverityAlert
	case absDiff >= closeDiffPct:
		severity = value.SeverityWarn
	}

	return entity.TargetComparison{
		DiffPct:  value.Round1(diff),
		Text:     fmt.Sprintf("Optimal price is %s your target price of $%.2f", text, target),
		Severity: severity,
	}
}
