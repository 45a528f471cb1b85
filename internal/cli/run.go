package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/transcriper/diarize/internal/pipeline"
	"github.com/transcriper/diarize/internal/ports/adapters/pyannote"
	"github.com/transcriper/diarize/internal/types"
)

// dependencyError mirrors the early-failure object printed before any
// model work when the runner cannot be located.
type dependencyError struct {
	Error string `json:"error"`
}

// run executes one diarization. Preflight failures print their JSON and
// return an error so Main exits 1; once the pipeline starts, failures
// are reported inside the envelope and the process exits 0.
func run(cmd *cobra.Command, audioPath string) error {
	env := newEnv()
	log := newLogger(env.GetString("log_level"))

	authToken, _ := cmd.Flags().GetString("auth-token")
	if authToken == "" {
		authToken = env.GetString("auth_token")
	}
	modelVersion, _ := cmd.Flags().GetString("model-version")
	deviceName, _ := cmd.Flags().GetString("device")
	outputPath, _ := cmd.Flags().GetString("output")
	runnerPath, _ := cmd.Flags().GetString("runner")
	if runnerPath == "" {
		runnerPath = env.GetString("runner")
	}
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	if cacheDir == "" {
		cacheDir = env.GetString("cache_dir")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = env.GetDuration("timeout")
	}

	runnerBin, err := pyannote.Find(runnerPath)
	if err != nil {
		depErr := fmt.Errorf("missing dependencies: %w", err)
		if emitErr := emit(os.Stdout, dependencyError{Error: depErr.Error()}, ""); emitErr != nil {
			return emitErr
		}
		return depErr
	}

	if _, err := os.Stat(audioPath); err != nil {
		msg := fmt.Sprintf("audio file not found: %s", audioPath)
		if emitErr := emit(os.Stdout, types.Failure{Error: msg}, ""); emitErr != nil {
			return emitErr
		}
		return fmt.Errorf("%s", msg)
	}

	cfg := pipeline.Config{
		AudioPath:    audioPath,
		AuthToken:    authToken,
		ModelVersion: modelVersion,
		Device:       deviceName,
		RunnerPath:   runnerBin,
		CacheDir:     cacheDir,
		Log:          log,
	}
	if err := cfg.Validate(); err != nil {
		if emitErr := emit(os.Stdout, types.Failure{Error: err.Error()}, ""); emitErr != nil {
			return emitErr
		}
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := runCtx(timeout)
	defer cancel()

	res, runErr := pipeline.Run(ctx, cfg)
	if runErr != nil {
		log.Error().Err(runErr).Msg("diarization failed")
		return emit(os.Stdout, types.NewFailure(runErr), outputPath)
	}
	return emit(os.Stdout, res, outputPath)
}

// runCtx bounds the run when a timeout was requested; by default the
// run has no deadline beyond the process lifetime.
func runCtx(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}
