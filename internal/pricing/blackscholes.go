package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BlackScholesParams bundles the five inputs to the BS kernel.
type BlackScholesParams struct {
	Spot   float64
	Strike float64
	TTE    float64
	Rate   float64
	Vol    float64
}

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// BlackScholes prices a European call or put. No validation of
// positivity: pathological inputs (T=0, vol=0, spot=0) are not
// rejected — they propagate as NaN/±Inf per IEEE-754, same as the
// original model.
func BlackScholes(p BlackScholesParams, kind OptionKind) (float64, error) {
	logSK := math.Log(p.Spot / p.Strike)
	scaledVol := p.Vol * math.Sqrt(p.TTE)
	d1 := (logSK + (p.Rate+0.5*p.Vol*p.Vol)*p.TTE) / scaledVol
	d2 := (logSK + (p.Rate-0.5*p.Vol*p.Vol)*p.TTE) / scaledVol

	switch kind {
	case Call:
		return p.Spot*standardNormal.CDF(d1) - p.Strike*math.Exp(-p.Rate*p.TTE)*standardNormal.CDF(d2), nil
	case Put:
		return p.Strike*math.Exp(-p.Rate*p.TTE)*standardNormal.CDF(-d2) - p.Spot*standardNormal.CDF(-d1), nil
	default:
		return 0, errModel("unknown option kind")
	}
}
