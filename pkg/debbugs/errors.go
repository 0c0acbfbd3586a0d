package debbugs

import (
	"fmt"

	"github.com/godebbugs/debbugs/pkg/soap"
)

// FaultError is returned when the service answers with a SOAP fault instead
// of a result.
type FaultError struct {
	Fault *soap.Fault
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("soap fault from server: %s", e.Fault)
}

// StatusError is returned when the server reports an HTTP error status but
// the response body does not carry a decodable SOAP fault.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d without a decodable fault: %v", e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
