package main

import (
	"math"
	"sort"
)

// TrendLine is an OLS regression line evaluated over the x-domain of the
// points it was fit to.
type TrendLine struct {
	X []float64
	Y []float64
}

// fitLogTrend fits y = exp(a + b*x) by ordinary least squares on ln(y),
// mirroring a log-y trendline: the fit happens in log space and the returned
// line is mapped back. Points with non-positive y cannot be log-transformed
// and are skipped. Returns false when the regression is undefined: fewer
// than two usable points, or no variance in x.
func fitLogTrend(xs, ys []float64) (TrendLine, bool) {
	var fx, fy []float64
	for i := range xs {
		if ys[i] <= 0 || math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, math.Log(ys[i]))
	}
	if len(fx) < 2 {
		return TrendLine{}, false
	}

	var meanX, meanY float64
	for i := range fx {
		meanX += fx[i]
		meanY += fy[i]
	}
	meanX /= float64(len(fx))
	meanY /= float64(len(fy))

	var sxx, sxy float64
	for i := range fx {
		dx := fx[i] - meanX
		sxx += dx * dx
		sxy += dx * (fy[i] - meanY)
	}
	if sxx == 0 {
		return TrendLine{}, false
	}

	b := sxy / sxx
	a := meanY - b*meanX

	line := TrendLine{
		X: append([]float64(nil), fx...),
		Y: make([]float64, len(fx)),
	}
	sort.Float64s(line.X)
	for i, x := range line.X {
		line.Y[i] = math.Exp(a + b*x)
	}
	return line, true
}
