package ports

import (
	"context"

	"github.com/transcriper/diarize/internal/types"
)

type Diarizer interface {
	Diarize(ctx context.Context, job types.Job) (types.Diarization, error)
}

type ModelCache interface {
	// Probe reports whether the named pipeline is present in the local
	// model cache. A nil return means the model can be loaded offline.
	Probe(model string) error
}

type DevicePicker interface {
	// Resolve returns the device computation will actually run on. An
	// unavailable accelerator falls back to cpu without error.
	Resolve(requested string) string
}
