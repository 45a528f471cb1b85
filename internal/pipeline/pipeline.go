package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/transcriper/diarize/internal/device"
	"github.com/transcriper/diarize/internal/modelcache"
	"github.com/transcriper/diarize/internal/ports"
	"github.com/transcriper/diarize/internal/ports/adapters/pyannote"
	"github.com/transcriper/diarize/internal/types"
	"github.com/transcriper/diarize/internal/usecase"
)

type Config struct {
	AudioPath    string `validate:"required"`
	AuthToken    string
	ModelVersion string `validate:"required"`
	Device       string `validate:"oneof=cpu cuda mps"`

	// RunnerPath is the resolved pyannote runner binary.
	RunnerPath string `validate:"required"`
	// CacheDir overrides the Hugging Face home directory. Empty means
	// the runner's own default cache.
	CacheDir string

	Log zerolog.Logger `validate:"-"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Device":
			return fmt.Errorf("device must be one of cpu, cuda, mps (got %q)", c.Device)
		case "AudioPath":
			return errors.New("audio path is empty")
		case "ModelVersion":
			return errors.New("model version is empty")
		case "RunnerPath":
			return errors.New("runner path is empty")
		}
	}
	return err
}

// Run wires the real adapters and executes one diarization. Any failure
// is returned as a kinded error for the caller to report as failure JSON.
func Run(ctx context.Context, cfg Config) (types.Result, error) {
	runner := pyannote.New(cfg.RunnerPath, cfg.CacheDir, cfg.Log)

	uc := usecase.New(usecase.Deps{
		Runner:  runner,
		Cache:   modelcache.New(cfg.CacheDir),
		Devices: device.Default(cfg.Log),
		Log:     cfg.Log,
	})

	return uc.Run(ctx, usecase.Input{
		AudioPath:    cfg.AudioPath,
		ModelVersion: cfg.ModelVersion,
		AuthToken:    cfg.AuthToken,
		Device:       cfg.Device,
	})
}

// ensure adapters implement ports
var _ ports.Diarizer = (*pyannote.Adapter)(nil)
var _ ports.ModelCache = (*modelcache.Cache)(nil)
var _ ports.DevicePicker = (*device.Prober)(nil)
