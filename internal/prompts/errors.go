package prompts

import "fmt"

// UnknownTaskError indicates a task name outside the fixed enumeration.
// This is a programming error in the caller, not a runtime condition.
type UnknownTaskError struct {
	Task Task
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown prompt task %q", string(e.Task))
}
