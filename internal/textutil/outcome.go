package textutil

import "strconv"

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	// KindDelegate means both inputs have content and the caller must compute
	// the real value.
	KindDelegate OutcomeKind = iota
	// KindDegenerate means the value was decided from emptiness alone.
	KindDegenerate
)

func (k OutcomeKind) String() string {
	switch k {
	case KindDegenerate:
		return "degenerate"
	case KindDelegate:
		return "delegate"
	default:
		return "unknown"
	}
}

// Outcome is the result of a guard check: either a degenerate value or a
// request to delegate. The zero value is Delegate.
type Outcome struct {
	kind  OutcomeKind
	value float64
}

// Degenerate returns an Outcome carrying v.
func Degenerate(v float64) Outcome {
	return Outcome{kind: KindDegenerate, value: v}
}

// Delegate returns the Outcome that hands computation back to the caller.
func Delegate() Outcome {
	return Outcome{kind: KindDelegate}
}

// Kind returns the outcome tag.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// IsDelegate reports whether the caller must compute the value itself.
func (o Outcome) IsDelegate() bool {
	return o.kind == KindDelegate
}

// Value returns the degenerate value. ok is false for Delegate.
func (o Outcome) Value() (v float64, ok bool) {
	if o.kind != KindDegenerate {
		return 0, false
	}
	return o.value, true
}

// Resolve returns the degenerate value or, for Delegate, the result of
// compute. compute is not called for degenerate outcomes.
func (o Outcome) Resolve(compute func() float64) float64 {
	if o.kind == KindDegenerate {
		return o.value
	}
	return compute()
}

// String returns the formatted value, or "delegate".
func (o Outcome) String() string {
	if o.kind != KindDegenerate {
		return "delegate"
	}
	return strconv.FormatFloat(o.value, 'f', -1, 64)
}
