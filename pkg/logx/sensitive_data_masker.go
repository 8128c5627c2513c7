package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

type maskRule struct {
	pattern     *regexp.Regexp
	replacement []byte
}

// Unit cost inputs are commercially sensitive, so request and response dumps
// hide them along with credentials. Numeric values become a quoted marker to
// keep the dump valid JSON.
//
//nolint:gochecknoglobals
var sensitiveDataRules = []maskRule{
	{regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"), []byte("${1}[MASKED]${2}")},
	{regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`), []byte("${1}[MASKED]${2}")},
	{regexp.MustCompile(`("baseCost":\s?)[0-9.eE+-]+(,|})`), []byte(`${1}"[MASKED]"${2}`)},
	{regexp.MustCompile(`("shippingCost":\s?)[0-9.eE+-]+(,|})`), []byte(`${1}"[MASKED]"${2}`)},
	{regexp.MustCompile(`("totalUnitCost":\s?)[0-9.eE+-]+(,|})`), []byte(`${1}"[MASKED]"${2}`)},
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, rule := range sensitiveDataRules {
		input = rule.pattern.ReplaceAll(input, rule.replacement)
	}

	return input
}
