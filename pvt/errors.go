package pvt

import "fmt"

// EvaluationError reports a correlation failure during a single-point
// evaluation. Err is the underlying *correlation.DomainError (reachable with
// errors.As).
type EvaluationError struct {
	Property    Property
	Correlation string
	Pressure    float64
	Err         error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluating %s with %s at p=%g psia: %v", e.Property, e.Correlation, e.Pressure, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// ConfigError reports a malformed or missing run parameter, detected before
// any evaluation starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// SampleError wraps the failure of one ensemble member. The whole run is
// aborted when it occurs.
type SampleError struct {
	Index    int
	Pressure float64
	Err      error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %d (p=%g psia): %v", e.Index, e.Pressure, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}
