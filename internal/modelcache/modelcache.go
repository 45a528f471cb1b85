// Package modelcache probes the local Hugging Face hub cache so a run can
// decide between offline pipeline load and an authenticated remote fetch.
package modelcache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cache points at a Hugging Face home directory. Cached models live under
// <home>/hub/models--<org>--<name>/snapshots/<revision>/.
type Cache struct {
	hub string
}

// New builds a Cache rooted at hfHome. An empty hfHome falls back to
// $HF_HOME and then to ~/.cache/huggingface.
func New(hfHome string) *Cache {
	if hfHome == "" {
		hfHome = os.Getenv("HF_HOME")
	}
	if hfHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			hfHome = filepath.Join(home, ".cache", "huggingface")
		}
	}
	return &Cache{hub: filepath.Join(hfHome, "hub")}
}

func (c *Cache) Probe(model string) error {
	snapshots := filepath.Join(c.hub, repoDir(model), "snapshots")
	entries, err := os.ReadDir(snapshots)
	if err != nil {
		return fmt.Errorf("no cached snapshot of %s under %s: %w", model, c.hub, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			return nil
		}
	}
	return fmt.Errorf("no cached snapshot of %s under %s", model, c.hub)
}

func repoDir(model string) string {
	return "models--" + strings.ReplaceAll(model, "/", "--")
}
