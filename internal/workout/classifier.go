package workout

import "time"

// Classify maps a finished session onto a run category. Rules are evaluated
// first-match-wins and the order is part of the contract: a long slow
// session hits the pace rules before the duration rule, while a session
// with no recorded distance carries a zero pace that fails every pace check
// and falls through to the duration rules.
func Classify(duration time.Duration, distanceM float64) Category {
	minutes := duration.Minutes()

	if minutes < 5 {
		return CategorySprint
	}
	if minutes < 15 {
		return CategoryShortRun
	}

	paceMinPerKm := 0.0
	if km := distanceM / 1000; km > 0 {
		paceMinPerKm = minutes / km
	}

	switch {
	case paceMinPerKm > 6.5:
		return CategoryRecoveryRun
	case paceMinPerKm > 5.5:
		return CategoryEasyRun
	case paceMinPerKm > 4.5:
		return CategoryTempoRun
	case minutes > 30:
		return CategoryLongRun
	}
	return CategoryMediumRun
}
