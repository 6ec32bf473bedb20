package contract

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed or inconsistent knowledge base.
// It is fatal at startup.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "knowledge base validation failed"
	case 1:
		return "knowledge base validation failed: " + e.Problems[0]
	default:
		return fmt.Sprintf("knowledge base validation failed (%d problems): %s",
			len(e.Problems), strings.Join(e.Problems, "; "))
	}
}

// InsufficientWisdomError is returned when no candidate clears the minimum
// relevance threshold for a context.
type InsufficientWisdomError struct {
	Threshold float64
	BestScore float64
}

func (e *InsufficientWisdomError) Error() string {
	return fmt.Sprintf("INSUFFICIENT_WISDOM: no principle scored above %.2f (best %.3f)", e.Threshold, e.BestScore)
}

// InvalidContextError is returned when a context carries an enumerated value
// outside its fixed set.
type InvalidContextError struct {
	Field string
	Value string
}

func (e *InvalidContextError) Error() string {
	return fmt.Sprintf("INVALID_CONTEXT: %s: invalid value %q", e.Field, e.Value)
}
