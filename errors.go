package cmdchain

import "fmt"

// RecordError reports the first primitive a Recorder rejected while a chain
// was being built. Index is the position of the failing step in append order.
//
// RecordError unwraps to the Recorder's error, so sentinel errors from the
// recorder package can be matched with errors.Is.
type RecordError struct {
	Index int
	Step  StepKind
	Err   error
}

// Error implements error.
func (e *RecordError) Error() string {
	return fmt.Sprintf("cmdchain: record step %d (%s): %v", e.Index, e.Step, e.Err)
}

// Unwrap returns the Recorder's error.
func (e *RecordError) Unwrap() error {
	return e.Err
}
