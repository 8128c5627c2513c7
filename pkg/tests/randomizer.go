package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Seed    int64
	Float64 func() float64
	Intn    func(n int) int
	Bool    func() bool
}

func NewRandomizer() Randomizer {
	return NewSeededRandomizer(time.Now().UnixNano())
}

// NewSeededRandomizer нужен, чтобы упавший property-тест можно было повторить:
// сид печатается в сообщении об ошибке.
func NewSeededRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Seed:    seed,
		Float64: random.Float64,
		Intn:    random.Intn,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
	}
}

// FloatBetween возвращает значение из [lo, hi).
func (r Randomizer) FloatBetween(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// IntBetween возвращает значение из [lo, hi].
func (r Randomizer) IntBetween(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func Choice[T any](r Randomizer, items []T) T {
	return items[r.Intn(len(items))]
}
