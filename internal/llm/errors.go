package llm

import (
	"errors"
	"fmt"
)

// ErrNoPayload indicates the response contained no candidate JSON region
// at all, as opposed to a region that failed to decode.
var ErrNoPayload = errors.New("no structured payload in response")

// ExtractionError indicates the provider returned output that could not be
// turned into structured data. Callers depending on structured data cannot
// proceed past this error, so it is never swallowed.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
