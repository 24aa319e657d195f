package calculator

import "errors"

// LinearRegression is an ordinary least-squares line y = Slope*x + Intercept.
type LinearRegression struct {
	Slope     float64
	Intercept float64
}

// FitLinear fits an OLS line through the points (x[i], y[i]).
func FitLinear(x, y []float64) (LinearRegression, error) {
	if len(x) != len(y) {
		return LinearRegression{}, errors.New("x and y must have the same length")
	}
	if len(x) < 2 {
		return LinearRegression{}, errors.New("need at least two points for a line")
	}

	n := float64(len(x))
	var xSum, ySum float64
	for i := range x {
		xSum += x[i]
		ySum += y[i]
	}
	xMean, yMean := xSum/n, ySum/n

	var num, den float64
	for i := range x {
		dx := x[i] - xMean
		num += dx * (y[i] - yMean)
		den += dx * dx
	}
	if den == 0 {
		// all x equal: the best horizontal fit is the mean
		return LinearRegression{Slope: 0, Intercept: yMean}, nil
	}
	slope := num / den
	return LinearRegression{Slope: slope, Intercept: yMean - slope*xMean}, nil
}

// Predict evaluates the line at x.
func (r LinearRegression) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}
