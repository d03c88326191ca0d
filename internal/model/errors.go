package model

// ValidationError reports bad or missing input data, either from
// deserializing a request payload or from a rejected persistence call.
type ValidationError struct {
	Reason string
	Cause  error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return e.Reason + ": " + e.Cause.Error()
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Cause }
