package pipeline

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		AudioPath:    "/tmp/a.wav",
		ModelVersion: "3.1",
		Device:       "cpu",
		RunnerPath:   "/usr/local/bin/pyannote-runner",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "bad device",
			mutate:  func(c *Config) { c.Device = "tpu" },
			wantErr: "device must be one of cpu, cuda, mps",
		},
		{
			name:    "empty audio path",
			mutate:  func(c *Config) { c.AudioPath = "" },
			wantErr: "audio path is empty",
		},
		{
			name:    "empty model version",
			mutate:  func(c *Config) { c.ModelVersion = "" },
			wantErr: "model version is empty",
		},
		{
			name:    "empty runner path",
			mutate:  func(c *Config) { c.RunnerPath = "" },
			wantErr: "runner path is empty",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestConfigValidate_FreeFormModelVersion(t *testing.T) {
	t.Parallel()

	// Any non-empty version string is accepted; an unknown version
	// surfaces later as a pipeline load error, not a config error.
	cfg := validConfig()
	cfg.ModelVersion = "community-1"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
