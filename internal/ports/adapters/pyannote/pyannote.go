// Package pyannote runs speaker diarization by spawning the external
// pyannote runner and decoding the JSON it prints on stdout.
package pyannote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/transcriper/diarize/internal/types"
)

type Adapter struct {
	bin    string
	hfHome string
	log    zerolog.Logger
}

func New(binPath, hfHome string, log zerolog.Logger) *Adapter {
	return &Adapter{bin: binPath, hfHome: hfHome, log: log}
}

func (a *Adapter) Diarize(ctx context.Context, job types.Job) (types.Diarization, error) {
	args := []string{
		"--model", job.Model,
		"--device", job.Device,
		job.AudioPath,
	}
	cmd := exec.CommandContext(ctx, a.bin, args...)
	cmd.Env = runnerEnv(os.Environ(), job, a.hfHome)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	a.log.Debug().
		Str("runner", a.bin).
		Str("model", job.Model).
		Str("device", job.Device).
		Bool("offline", job.Offline).
		Msg("invoking pyannote runner")

	if err := cmd.Run(); err != nil {
		return types.Diarization{}, fmt.Errorf("pyannote runner failed: %w", err)
	}
	return parseOutput(out.Bytes())
}

func parseOutput(b []byte) (types.Diarization, error) {
	var d types.Diarization
	if err := json.Unmarshal(b, &d); err != nil {
		return types.Diarization{}, fmt.Errorf("pyannote runner returned invalid JSON: %w", err)
	}
	if d.Error != "" {
		return types.Diarization{}, fmt.Errorf("pyannote runner: %s", d.Error)
	}
	return d, nil
}

// runnerEnv extends the parent environment with the model-resolution
// mode. Offline jobs must never reach the network; authenticated jobs
// carry the token that permits a hub fetch.
func runnerEnv(base []string, job types.Job, hfHome string) []string {
	env := append([]string(nil), base...)
	if hfHome != "" {
		env = append(env, "HF_HOME="+hfHome)
	}
	if job.Offline {
		env = append(env, "HF_HUB_OFFLINE=1")
	}
	if job.AuthToken != "" {
		env = append(env, "HF_TOKEN="+job.AuthToken)
	}
	return env
}
