package calc

import "fmt"

// DomainError reports an operation that is mathematically undefined for its
// inputs: a zero divisor, or a non-positive base raised to a non-integer
// exponent. Economically implausible but well-defined inputs (e.g. r <= g in
// a perpetuity) do not raise it; validating those is the caller's job.
type DomainError struct {
	Op     string // function that rejected the input, e.g. "PerpetuityValue"
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func domainError(op, reason string) error {
	return &DomainError{Op: op, Reason: reason}
}

func domainErrorf(op, format string, args ...any) error {
	return &DomainError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
