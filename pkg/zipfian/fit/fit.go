// Package fit estimates the scale constant of the inverse-rank
// frequency model F(r) = C/r from an empirically ranked vocabulary.
package fit

import "github.com/lexstat/zipfian/pkg/zipfian/rank"

// Fit holds the fitted model for one document.
type Fit struct {
	// C is the least-squares-optimal scale constant.
	C float64
	// Theoretical holds C/r for each provided rank, in rank order.
	Theoretical []float64
	// SSE is the total squared error between empirical and
	// theoretical frequencies.
	SSE float64
}

// LeastSquares fits F(r) = C/r to the ranked items by minimizing
// Σ(F_r - C/r)² over the single free parameter C.
//
// Setting the derivative of the objective to zero gives the closed
// form
//
//	C* = Σ(F_r / r) / Σ(1 / r²)
//
// summed over all provided ranks. An empty input yields the zero Fit:
// C = 0, no theoretical frequencies, SSE = 0. That is a valid terminal
// result, not an error.
func LeastSquares(items []rank.RankedItem) Fit {
	if len(items) == 0 {
		return Fit{}
	}

	var numerator, denominator float64
	for _, it := range items {
		r := float64(it.Rank)
		numerator += float64(it.Count) / r
		denominator += 1 / (r * r)
	}

	var c float64
	if denominator != 0 {
		c = numerator / denominator
	}

	theoretical := make([]float64, len(items))
	var sse float64
	for i, it := range items {
		theoretical[i] = c / float64(it.Rank)
		diff := float64(it.Count) - theoretical[i]
		sse += diff * diff
	}

	return Fit{C: c, Theoretical: theoretical, SSE: sse}
}
