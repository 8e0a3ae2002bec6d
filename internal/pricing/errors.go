package pricing

import "fmt"

// InvalidInputError reports a physical parameter that is non-positive,
// non-numeric or beyond a hard machine limit. Never retried.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s (%g): %s", e.Field, e.Value, e.Reason)
}

// WidthExceededError reports a computed printable width beyond machine
// capacity. It carries a suggested maximum track count so callers can prompt
// the user to adjust instead of failing hard.
type WidthExceededError struct {
	ComputedMM         float64
	MaxMM              float64
	SuggestedMaxTracks int
}

func (e *WidthExceededError) Error() string {
	if e.SuggestedMaxTracks > 0 {
		return fmt.Sprintf("total printable width %gmm exceeds machine width %gmm, try %d tracks or fewer",
			e.ComputedMM, e.MaxMM, e.SuggestedMaxTracks)
	}
	return fmt.Sprintf("total printable width %gmm exceeds machine width %gmm", e.ComputedMM, e.MaxMM)
}

// NoFeasibleOptionError reports that no cylinder/repetition combination fits
// the requested advance. Distinct from a calculation bug.
type NoFeasibleOptionError struct {
	AdvanceMM float64
}

func (e *NoFeasibleOptionError) Error() string {
	return fmt.Sprintf("no feasible cylinder option for advance %gmm", e.AdvanceMM)
}

// InvalidMarkupError reports a markup percentage at or above 100, which would
// zero or invert the pricing divisor.
type InvalidMarkupError struct {
	MarkupPct float64
}

func (e *InvalidMarkupError) Error() string {
	return fmt.Sprintf("markup %g%% must be below 100%%", e.MarkupPct)
}

// CostCalculationError wraps a failure inside the per-scale loop. The batch
// is aborted fail-fast; the original cause is preserved for diagnostics.
type CostCalculationError struct {
	Scale int
	Err   error
}

func (e *CostCalculationError) Error() string {
	return fmt.Sprintf("cost calculation failed at scale %d: %v", e.Scale, e.Err)
}

func (e *CostCalculationError) Unwrap() error { return e.Err }
