package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "diarize <audio_path>",
		Short:        "Run pyannote speaker diarization over an audio file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("auth-token", "", "Hugging Face token, only needed when the model is not cached")
	root.Flags().String("model-version", "3.1", "Pipeline version")
	root.Flags().String("device", "cpu", "Processing device (cpu|cuda|mps)")
	root.Flags().String("output", "", "Also write the JSON result to this file")

	// Hidden tuning flags (internal)
	root.Flags().String("runner", "", "Path to the pyannote runner binary")
	_ = root.Flags().MarkHidden("runner")
	root.Flags().String("cache-dir", "", "Hugging Face home directory override")
	_ = root.Flags().MarkHidden("cache-dir")
	root.Flags().Duration("timeout", 0, "Abort the runner after this duration (0 = no timeout)")
	_ = root.Flags().MarkHidden("timeout")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
