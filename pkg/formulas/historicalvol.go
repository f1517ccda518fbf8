package formulas

import (
	"github.com/markcheno/go-talib"
)

// RollingStdDev computes the rolling standard deviation of data over period,
// delegating to go-talib's windowed implementation. The first period-1
// entries of the result are NaN, matching talib's warm-up convention.
func RollingStdDev(data []float64, period int) []float64 {
	if len(data) < period {
		return nil
	}
	return talib.StdDev(data, period, 1)
}

// LatestAnnualizedHistoricalVol returns the most recent rolling standard
// deviation of returns over period, annualized assuming 252 trading days.
// The bool is false when there is not enough data for a single window.
func LatestAnnualizedHistoricalVol(returns []float64, period int) (float64, bool) {
	rolling := RollingStdDev(returns, period)
	if len(rolling) == 0 {
		return 0, false
	}
	latest := rolling[len(rolling)-1]
	if isNaN(latest) {
		return 0, false
	}
	return latest * annualizationFactor, true
}

const annualizationFactor = 15.874507866387544 // math.Sqrt(252)

func isNaN(f float64) bool {
	return f != f
}
