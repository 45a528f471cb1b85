package cli

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// newEnv binds the process environment so flags can fall back to it.
// DIARIZE_* is the primary prefix; the Hugging Face names are honored so
// existing hub setups keep working.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DIARIZE")
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")
	_ = v.BindEnv("auth_token", "DIARIZE_AUTH_TOKEN", "HF_TOKEN", "HUGGING_FACE_HUB_TOKEN")
	_ = v.BindEnv("runner", "DIARIZE_RUNNER")
	_ = v.BindEnv("cache_dir", "DIARIZE_CACHE_DIR", "HF_HOME")
	_ = v.BindEnv("timeout", "DIARIZE_TIMEOUT")
	return v
}

// newLogger writes human-readable diagnostics to stderr, tagged with a
// per-run id. stdout is reserved for the single JSON result document.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
