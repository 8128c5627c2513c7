package value

import "fmt"

// Season сезон продаж. Сезонный коэффициент применяется к якорным ценам,
// но не к себестоимости.
type Season string

const (
	SeasonSpringSummer Season = "Spring/Summer"
	SeasonFallWinter   Season = "Fall/Winter"
	SeasonYearRound    Season = "Year-round"
)

var seasonFactors = map[Season]float64{ //nolint:gochecknoglobals
	SeasonSpringSummer: 1.05, //nolint:mnd
	SeasonFallWinter:   1.10, //nolint:mnd
	SeasonYearRound:    1.00,
}

func Seasons() []Season {
	return []Season{SeasonSpringSummer, SeasonFallWinter, SeasonYearRound}
}

func ParseSeason(s string) (Season, error) {
	season := Season(s)
	if _, ok := seasonFactors[season]; !ok {
		return "", fmt.Errorf("unknown season %q", s)
	}

	return season, nil
}

func (s Season) String() string {
	return string(s)
}

func (s Season) Factor() (float64, bool) {
	f, ok := seasonFactors[s]
	return f, ok
}
