package batch

import "context"

type optionKey string

const (
	linesKey  optionKey = "batch_lines"
	policyKey optionKey = "batch_failure_policy"
)

// FailurePolicy decides what happens to queued chains once one chain fails.
type FailurePolicy int

const (
	// ContinueOnFailure materializes every chain regardless of failures.
	ContinueOnFailure FailurePolicy = iota
	// StopOnFailure leaves chains that have not started unmaterialized;
	// their outcomes fail with ErrStopped.
	StopOnFailure
)

// WithLines overrides the worker line count passed to Run or All.
// Values below one are ignored.
func WithLines(ctx context.Context, lines int) context.Context {
	return context.WithValue(ctx, linesKey, lines)
}

func WithFailurePolicy(ctx context.Context, policy FailurePolicy) context.Context {
	return context.WithValue(ctx, policyKey, policy)
}

func linesFrom(ctx context.Context, fallback int) int {
	if lines, ok := ctx.Value(linesKey).(int); ok && lines > 0 {
		return lines
	}
	if fallback < 1 {
		return 1
	}
	return fallback
}

func policyFrom(ctx context.Context) FailurePolicy {
	if policy, ok := ctx.Value(policyKey).(FailurePolicy); ok {
		return policy
	}
	return ContinueOnFailure
}
