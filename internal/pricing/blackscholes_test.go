package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlackScholesATMCall(t *testing.T) {
	p, err := BlackScholes(BlackScholesParams{Spot: 100, Strike: 100, TTE: 1, Rate: 0, Vol: 0.2}, Call)
	assert.NoError(t, err)
	assert.InDelta(t, 7.965567455405804, p, 1e-9)
}

func TestBlackScholesPropagatesNonFinite(t *testing.T) {
	p, err := BlackScholes(BlackScholesParams{Spot: 100, Strike: 100, TTE: 0, Rate: 0, Vol: 0.2}, Call)
	assert.NoError(t, err)
	assert.True(t, isNaNOrInf(p))
}

func isNaNOrInf(f float64) bool {
	return f != f || f > 1e300 || f < -1e300
}
