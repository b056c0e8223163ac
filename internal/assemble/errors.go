package assemble

import "fmt"

// StructureError reports a response whose top-level shape is unusable.
// It is the only condition an assembler surfaces as a hard failure; every
// other miss degrades to a null field plus a diagnostic.
type StructureError struct {
	Message string
	Cause   error
}

func (e *StructureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("response structure: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("response structure: %s", e.Message)
}

func (e *StructureError) Unwrap() error {
	return e.Cause
}

func structureErr(format string, args ...any) error {
	return &StructureError{Message: fmt.Sprintf(format, args...)}
}
