package device

import (
	"io/fs"
	"os"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

// Prober decides which compute device a run should use. Accelerators are
// only honored when actually present; everything else resolves to cpu.
type Prober struct {
	goos     string
	goarch   string
	lookPath func(string) (string, error)
	stat     func(string) (fs.FileInfo, error)
	log      zerolog.Logger
}

func Default(log zerolog.Logger) *Prober {
	return &Prober{
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
		lookPath: exec.LookPath,
		stat:     os.Stat,
		log:      log,
	}
}

func (p *Prober) Resolve(requested string) string {
	switch requested {
	case "cuda":
		if p.cudaAvailable() {
			return "cuda"
		}
	case "mps":
		if p.mpsAvailable() {
			return "mps"
		}
	case "cpu":
		return "cpu"
	}
	if requested != "cpu" {
		p.log.Debug().Str("requested", requested).Msg("accelerator unavailable, staying on cpu")
	}
	return "cpu"
}

func (p *Prober) cudaAvailable() bool {
	if _, err := p.lookPath("nvidia-smi"); err == nil {
		return true
	}
	if _, err := p.stat("/proc/driver/nvidia/version"); err == nil {
		return true
	}
	return false
}

func (p *Prober) mpsAvailable() bool {
	return p.goos == "darwin" && p.goarch == "arm64"
}
