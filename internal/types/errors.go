package types

import "errors"

// Kind is a closed enumeration of run-failure categories. It replaces
// dynamic exception-class reporting with a fixed set plus an Unknown
// fallback, so consumers can switch on error_type.
type Kind string

const (
	// KindModelNotCached: the pipeline is absent from the local cache and
	// no auth token was supplied to fetch it.
	KindModelNotCached Kind = "ModelNotCached"
	// KindModelAcquisition: the authenticated fetch-and-load attempt failed.
	KindModelAcquisition Kind = "ModelAcquisitionFailed"
	// KindInference: the pipeline loaded but execution over the audio failed.
	KindInference Kind = "InferenceFailed"
	// KindUnknown covers anything not produced through a KindError.
	KindUnknown Kind = "Unknown"
)

// KindError carries a failure category alongside the underlying cause.
type KindError struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *KindError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *KindError) Unwrap() error { return e.Cause }

// Classify maps an error to its Kind, defaulting to KindUnknown.
func Classify(err error) Kind {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	return KindUnknown
}

// NewFailure shapes an in-pipeline error into the failure envelope.
func NewFailure(err error) Failure {
	return Failure{
		Error:     err.Error(),
		ErrorType: string(Classify(err)),
	}
}
