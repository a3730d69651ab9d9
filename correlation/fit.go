package correlation

import "math"

// fitOutcome is the result of attempting to fit a model over a node's
// span: either the node becomes terminal immediately (no model), or a
// candidate (slope, intercept, epsilon) is produced for validate to check.
type fitOutcome struct {
	terminal  bool
	slope     float64
	intercept float64
	epsilon   uint64
}

// fitSpan attempts to fit a node's model over triples[begin:end+1]
// per spec.md §4.1: nodes at or below MinNodeSize, or at the last
// permitted level, never attempt a fit and go straight to terminal;
// otherwise interpolation or regression is attempted, falling back to
// terminal if the span cannot support a slope (constant guest values).
func fitSpan(cfg Config, triples []TrainingTriple, begin, end, level int) fitOutcome {
	spanLength := end - begin + 1

	if spanLength <= cfg.MinNodeSize || level == cfg.MaxHeight-1 {
		return fitOutcome{terminal: true}
	}

	guestLo, guestHi := triples[begin].Guest, triples[end].Guest
	hostLo, hostHi := triples[begin].Host, triples[end].Host

	var slope, intercept float64
	switch cfg.ModelKind {
	case Regression:
		var ok bool
		slope, intercept, ok = fitRegression(triples[begin : end+1])
		if !ok {
			return fitOutcome{terminal: true}
		}
	default: // Interpolation
		if guestHi <= guestLo {
			return fitOutcome{terminal: true}
		}
		slope = float64(hostHi-hostLo) / float64(guestHi-guestLo)
		intercept = float64(hostLo) - slope*float64(guestLo)
	}

	epsilon := computeEpsilon(cfg.ErrorBound, spanLength, hostLo, hostHi)

	return fitOutcome{slope: slope, intercept: intercept, epsilon: epsilon}
}

// fitRegression computes an ordinary-least-squares line over pts,
// returning ok=false if the guest values are constant (zero denominator).
func fitRegression(pts []TrainingTriple) (slope, intercept float64, ok bool) {
	n := float64(len(pts))
	var guestSum, hostSum float64
	for _, p := range pts {
		guestSum += float64(p.Guest)
		hostSum += float64(p.Host)
	}
	guestAvg := guestSum / n
	hostAvg := hostSum / n

	var upper, lower float64
	for _, p := range pts {
		dg := float64(p.Guest) - guestAvg
		dh := float64(p.Host) - hostAvg
		upper += dg * dh
		lower += dg * dg
	}
	if lower == 0 {
		return 0, 0, false
	}

	slope = upper / lower
	intercept = hostAvg - slope*guestAvg
	return slope, intercept, true
}

// computeEpsilon shapes a host-value tolerance from local density, per
// spec.md §4.1: epsilon = ceil(error_bound / (span_length/(host_hi-host_lo)) / 2)
// when host_hi > host_lo, else epsilon = error_bound.
func computeEpsilon(errorBound uint64, spanLength int, hostLo, hostHi uint64) uint64 {
	if hostHi <= hostLo {
		return errorBound
	}
	density := float64(spanLength) / float64(hostHi-hostLo)
	eps := math.Ceil(float64(errorBound) / density / 2)
	if eps < 0 {
		eps = 0
	}
	return uint64(eps)
}

// predict returns round(slope*guest + intercept).
func predict(slope, intercept float64, guest uint64) float64 {
	return math.Round(slope*float64(guest) + intercept)
}

// isWithinBound reports whether host lies in [predicted-epsilon,
// predicted+epsilon], using signed float arithmetic so a predicted value
// smaller than epsilon does not underflow as it would in plain uint64
// subtraction (the bug spec.md §9 flags in the source's get_bound).
func isWithinBound(predicted float64, epsilon uint64, host uint64) bool {
	lo := predicted - float64(epsilon)
	hi := predicted + float64(epsilon)
	h := float64(host)
	return h >= lo && h <= hi
}

// clampedBound returns the point-query bound [lo, hi] for a predicted
// host value, clamping lo at 0 per spec.md §9's resolution of the
// source's get_bound underflow.
func clampedBound(predicted float64, epsilon uint64) (lo, hi uint64) {
	lof := predicted - float64(epsilon)
	if lof < 0 {
		lo = 0
	} else {
		lo = uint64(lof)
	}
	hif := predicted + float64(epsilon)
	if hif < 0 {
		hi = 0
	} else {
		hi = uint64(hif)
	}
	return lo, hi
}
