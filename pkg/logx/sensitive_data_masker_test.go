package logx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"margin_engine/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Base cost",
			input:  []byte(`{"baseCost":15.5,"overheadPct":20}`),
			output: []byte(`{"baseCost":"[MASKED]","overheadPct":20}`),
		},
		{
			name:   "Shipping cost last field",
			input:  []byte(`{"segment":"Budget","shippingCost": 2.5}`),
			output: []byte(`{"segment":"Budget","shippingCost": "[MASKED]"}`),
		},
		{
			name:   "Total unit cost in response",
			input:  []byte(`{"totalUnitCost":22.55,"anchors":{"target":37.58}}`),
			output: []byte(`{"totalUnitCost":"[MASKED]","anchors":{"target":37.58}}`),
		},
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"segment":"Luxury","season":"Year-round"}`),
			output: []byte(`{"segment":"Luxury","season":"Year-round"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	input := []byte(`{"baseCost":15.5}`)

	rq.Equal(input, logx.NewNopSensitiveDataMasker().Mask(input))
}

func TestMaskFunc(t *testing.T) {
	rq := require.New(t)

	masker := logx.MaskFunc(func(input []byte) []byte {
		return bytes.ReplaceAll(input, []byte("15.5"), []byte("***"))
	})

	rq.Equal([]byte(`{"baseCost":***}`), masker.Mask([]byte(`{"baseCost":15.5}`)))
}
