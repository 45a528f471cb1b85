package pyannote

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const runnerName = "pyannote-runner"

// Find locates the runner binary: an explicit path wins, then $PATH,
// then a copy sitting next to the current executable.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("runner %q: %w", explicit, err)
		}
		return explicit, nil
	}

	if path, err := exec.LookPath(runnerName); err == nil {
		return path, nil
	}

	if exe, err := os.Executable(); err == nil {
		candidates := []string{
			filepath.Join(filepath.Dir(exe), runnerName),
			filepath.Join(filepath.Dir(exe), runnerName+".exe"),
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("%s not found in PATH or next to the executable", runnerName)
}
