package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureRoundTrip(t *testing.T) {
	measures := []Measure{Price, Exposure, UnderlyingPrice, Vol, Rate, TimeToExpiry, Delta, Gamma}
	for _, m := range measures {
		parsed, err := ParseMeasure(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseMeasureInvalid(t *testing.T) {
	_, err := ParseMeasure("not_a_measure")
	assert.Error(t, err)
	var perr *PricerError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidMeasure, perr.Kind)
}

func TestTimeToExpiryString(t *testing.T) {
	assert.Equal(t, "time_to_expiry", TimeToExpiry.String())
}

func TestExposureScalesLinearly(t *testing.T) {
	assert.Equal(t, Linear, Exposure.PositionScaling())
	for _, m := range []Measure{Price, UnderlyingPrice, Vol, Rate, TimeToExpiry, Delta, Gamma} {
		assert.Equal(t, NoScaling, m.PositionScaling())
	}
}
