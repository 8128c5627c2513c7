package value

// ConfidenceTier оценка того, насколько оптимальная цена близка к целевой.
type ConfidenceTier string

const (
	ConfidenceExcellent ConfidenceTier = "Excellent"
	ConfidenceGood      ConfidenceTier = "Good"
	ConfidenceFair      ConfidenceTier = "Fair"
	ConfidenceWeak      ConfidenceTier = "Weak"
)

func (c ConfidenceTier) String() string {
	return string(c)
}

// Severity степень расхождения оптимальной и целевой цены.
type Severity string

const (
	SeverityOK    Severity = "ok"
	SeverityWarn  Severity = "warn"
	SeverityAlert Severity = "alert"
)
