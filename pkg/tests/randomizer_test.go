package tests_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"margin_engine/pkg/tests"
)

func TestSeededRandomizerRepeatable(t *testing.T) {
	rq := require.New(t)

	a := tests.NewSeededRandomizer(42)
	b := tests.NewSeededRandomizer(42)

	for range 10 {
		rq.Equal(a.FloatBetween(1, 2), b.FloatBetween(1, 2))
		rq.Equal(a.IntBetween(100, 10000), b.IntBetween(100, 10000))
	}
}

func TestRandomizerBounds(t *testing.T) {
	rq := require.New(t)

	r := tests.NewRandomizer()

	for range 1000 {
		f := r.FloatBetween(5, 40)
		rq.GreaterOrEqual(f, 5.0)
		rq.Less(f, 40.0)

		i := r.IntBetween(0, 25)
		rq.GreaterOrEqual(i, 0)
		rq.LessOrEqual(i, 25)

		rq.Contains([]string{"a", "b"}, tests.Choice(r, []string{"a", "b"}))
	}
}
