package club

import "fmt"

// ValidationError reports malformed input to a ledger mutation: a
// non-positive amount, an empty asset symbol, an unknown member. The
// mutation is rejected with no state change and is never retried
// automatically.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// validationf builds a ValidationError from a format string.
func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// InsufficientBalanceError reports a purchase whose total cost exceeds the
// pool's available balance at the moment of the call. The transaction is
// never appended; the caller must re-decide before retrying.
type InsufficientBalanceError struct {
	Cost      Money
	Available Money
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("cannot spend %s, available balance is %s", e.Cost, e.Available)
}
