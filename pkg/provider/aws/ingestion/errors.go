package ingestion

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrStartFailed is matched by every error returned when the service did not
	// accept an ingestion job.
	ErrStartFailed = errors.New("ingestion start failed")

	ErrUnrecognizedEvent = errors.New("unrecognized event")
)

type StartError struct {
	KnowledgeBaseID string
	DataSourceID    string
	Cause           error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("%s for knowledge base %s data source %s", ErrStartFailed, e.KnowledgeBaseID, e.DataSourceID)
}

func (e *StartError) Is(target error) bool {
	return target == ErrStartFailed
}

func (e *StartError) Unwrap() error {
	return e.Cause
}
