package value

import "github.com/shopspring/decimal"

// Round2 округляет до центов, половина от нуля.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64() //nolint:mnd
}

// Round1 округляет до десятых, используется для процентов.
func Round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// RoundInt целый процент, половина от нуля.
func RoundInt(v float64) int {
	return int(decimal.NewFromFloat(v).Round(0).IntPart())
}
