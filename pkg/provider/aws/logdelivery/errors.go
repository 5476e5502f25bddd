package logdelivery

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSetupFailed is matched by every error returned from a failed provisioning run.
	ErrSetupFailed = errors.New("log delivery setup failed")

	// ErrMissingDestinationARN is the cause when PutDeliveryDestination succeeds
	// without returning the destination's ARN.
	ErrMissingDestinationARN = errors.New("delivery destination response has no ARN")

	// ErrDeliveryNotFound is the cause when CreateDelivery reports a conflict but
	// no delivery links the source to the destination.
	ErrDeliveryNotFound = errors.New("conflicting delivery not found")

	// ErrSpecInFlight is returned to a caller that joins an in-flight run for
	// the same knowledge base but asked for a different spec.
	ErrSpecInFlight = errors.New("log delivery setup already in flight with a different spec")
)

// SetupError is the single coarse error of a failed provisioning run. Step is
// the step that failed and the remaining steps were not attempted.
type SetupError struct {
	Step  string
	Cause error
	// RollbackErr holds compensation failures when rollback was enabled.
	RollbackErr error
}

func (e *SetupError) Error() string {
	msg := fmt.Sprintf("%s at step %s", ErrSetupFailed, e.Step)
	if e.RollbackErr != nil {
		msg += " (rollback incomplete)"
	}
	return msg
}

func (e *SetupError) Is(target error) bool {
	return target == ErrSetupFailed
}

func (e *SetupError) Unwrap() error {
	return e.Cause
}
