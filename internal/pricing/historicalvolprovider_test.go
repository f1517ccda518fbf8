package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoricalVolProviderInsufficientData(t *testing.T) {
	p := NewHistoricalVolProvider([]float64{0.01, -0.02, 0.005}, 20)
	_, err := p.Eval(100, 100, 1)
	assert.Error(t, err)
	var perr *PricerError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, Infrastructure, perr.Kind)
}

func TestHistoricalVolProviderReturnsPositiveVol(t *testing.T) {
	returns := make([]float64, 30)
	for i := range returns {
		if i%2 == 0 {
			returns[i] = 0.01
		} else {
			returns[i] = -0.01
		}
	}
	p := NewHistoricalVolProvider(returns, 20)
	vol, err := p.Eval(100, 100, 1)
	assert.NoError(t, err)
	assert.Greater(t, vol, 0.0)
}
