package swipe

import "fmt"

// ConfigurationError is returned by Bind when the supplied Config cannot
// produce any output.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "swipe: invalid configuration: " + e.Reason
}

// InvalidTargetError is returned by Bind when the input target cannot be
// attached to.
type InvalidTargetError struct {
	Reason string
	Err    error
}

func (e *InvalidTargetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swipe: invalid target: %s: %v", e.Reason, e.Err)
	}
	return "swipe: invalid target: " + e.Reason
}

func (e *InvalidTargetError) Unwrap() error {
	return e.Err
}

// InvalidInputError reports a raw event the sampler could not turn into a
// coordinate. A conformant input source never produces one.
type InvalidInputError struct {
	Phase  Phase
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("swipe: invalid %s event: %s", e.Phase, e.Reason)
}
