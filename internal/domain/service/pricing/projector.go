package pricing

// ProjectVolume линейная модель эластичности вокруг целевой цены.
// При price == target возвращает baseVolume без изменений, результат
// не бывает отрицательным.
func ProjectVolume(price, target, baseVolume, elasticity float64) float64 {
	priceDiffPct := (price - target) / target
	volumeChangePct := -elasticity * priceDiffPct

	return max(0, baseVolume*(1+volumeChangePct))
}
