package metric

import "gonum.org/v1/gonum/floats"

// Drawdown describes the deepest decline from a running peak
type Drawdown struct {
	Value       float64 // Peak minus trough, always >= 0
	PeakIndex   int     // Index of the peak governing the trough, -1 for an empty series
	TroughIndex int     // Index of the trough, -1 for an empty series
}

// MaxDrawdown returns the largest decline from a running peak to any later value.
// Empty and non-decreasing series yield 0.
func MaxDrawdown[F ~float64](values []F) F {
	var res F
	if len(values) == 0 {
		return res
	}

	peak := values[0]
	for _, value := range values {
		if value > peak {
			peak = value
			continue
		}

		if dd := peak - value; dd > res {
			res = dd
		}
	}

	return res
}

// MaxDrawdownDetail returns the maximum drawdown together with the positions of its
// peak and trough. Ties keep the earliest trough.
func MaxDrawdownDetail(values []float64) Drawdown {
	result := Drawdown{PeakIndex: -1, TroughIndex: -1}
	if len(values) == 0 {
		return result
	}

	peakIdx := 0
	result.PeakIndex, result.TroughIndex = 0, 0
	for i, value := range values {
		if value > values[peakIdx] {
			peakIdx = i
			continue
		}

		if dd := values[peakIdx] - value; dd > result.Value {
			result.Value = dd
			result.PeakIndex = peakIdx
			result.TroughIndex = i
		}
	}

	return result
}

// Drawdowns returns the underwater curve: the distance below the running peak at
// every point of the series
func Drawdowns(values []float64) []float64 {
	curve := make([]float64, len(values))
	if len(values) == 0 {
		return curve
	}

	peak := values[0]
	for i, value := range values {
		if value > peak {
			peak = value
		}
		curve[i] = peak - value
	}

	return curve
}

// RelativeMaxDrawdown returns the largest decline expressed as a fraction of its peak.
// Points governed by a non-positive peak are ignored.
func RelativeMaxDrawdown(values []float64) float64 {
	res := 0.0
	if len(values) == 0 {
		return res
	}

	peak := values[0]
	for _, value := range values {
		if value > peak {
			peak = value
			continue
		}

		if peak <= 0 {
			continue
		}

		if dd := (peak - value) / peak; dd > res {
			res = dd
		}
	}

	return res
}

// EquityCurve compounds per-period returns (0.05 = +5%) into a curve starting from
// initial. The result has one more point than returns.
func EquityCurve(initial float64, returns []float64) []float64 {
	growth := make([]float64, len(returns)+1)
	growth[0] = initial
	for i, r := range returns {
		growth[i+1] = 1 + r
	}

	return floats.CumProd(growth, growth)
}
