package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/transcriper/diarize/internal/domain/report"
	"github.com/transcriper/diarize/internal/ports"
	"github.com/transcriper/diarize/internal/types"
)

const pipelineTemplate = "pyannote/speaker-diarization-%s"

type Deps struct {
	Runner  ports.Diarizer
	Cache   ports.ModelCache
	Devices ports.DevicePicker
	Log     zerolog.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	AudioPath    string
	ModelVersion string
	AuthToken    string
	Device       string
}

// Run resolves the pipeline (cache first, authenticated fetch second),
// invokes the runner once and shapes the result envelope. Errors carry a
// types.Kind so the caller can report them as failure JSON.
func (u Usecase) Run(ctx context.Context, in Input) (types.Result, error) {
	model := fmt.Sprintf(pipelineTemplate, in.ModelVersion)
	resolved := u.d.Devices.Resolve(in.Device)

	job := types.Job{
		AudioPath: in.AudioPath,
		Model:     model,
		Device:    resolved,
	}
	if err := u.d.Cache.Probe(model); err != nil {
		if in.AuthToken == "" {
			return types.Result{}, &types.KindError{
				Kind:  types.KindModelNotCached,
				Msg:   fmt.Sprintf("pipeline %s is not cached locally and no auth token was provided", model),
				Cause: err,
			}
		}
		u.d.Log.Info().Str("model", model).Msg("model not cached, fetching with auth token")
		job.AuthToken = in.AuthToken
	} else {
		job.Offline = true
	}

	out, err := u.d.Runner.Diarize(ctx, job)
	if err != nil {
		kind := types.KindInference
		if !job.Offline {
			kind = types.KindModelAcquisition
		}
		return types.Result{}, &types.KindError{
			Kind:  kind,
			Msg:   "diarization pipeline failed",
			Cause: err,
		}
	}

	deviceUsed := out.Device
	if deviceUsed == "" {
		deviceUsed = resolved
	}
	u.d.Log.Info().
		Int("turns", len(out.Turns)).
		Str("device", deviceUsed).
		Msg("diarization complete")

	return report.Build(out.Turns, in.ModelVersion, deviceUsed), nil
}
