package types

// SpeakerSegment is one speaker-attributed slice of the input audio.
type SpeakerSegment struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Duration  float64 `json:"duration"`
	// Confidence is always 1.0: the wrapped pipeline exposes no per-turn
	// confidence and downstream consumers rely on the placeholder.
	Confidence float64 `json:"confidence"`
}

// Result is the envelope emitted on stdout for a successful run.
type Result struct {
	Success       bool             `json:"success"`
	Speakers      []SpeakerSegment `json:"speakers"`
	TotalSpeakers int              `json:"total_speakers"`
	TotalSegments int              `json:"total_segments"`
	ModelVersion  string           `json:"model_version"`
	DeviceUsed    string           `json:"device_used"`
}

// Failure is the envelope emitted when the run fails after preflight.
// Preflight errors reuse the same shape without an error_type.
type Failure struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorType string `json:"error_type,omitempty"`
}

// Job is a single diarization request handed to the runner adapter.
type Job struct {
	AudioPath string
	// Model is the full pipeline name, e.g. "pyannote/speaker-diarization-3.1".
	Model  string
	Device string
	// AuthToken, when set, permits the runner to fetch the model remotely.
	AuthToken string
	// Offline forces the runner to resolve the model from the local cache only.
	Offline bool
}

// Turn is one (interval, track, speaker) triple produced by the runner.
type Turn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Track   string  `json:"track"`
	Speaker string  `json:"speaker"`
}

// Diarization is the JSON document the runner prints on stdout.
type Diarization struct {
	Turns []Turn `json:"turns"`
	// Device is the compute device the runner actually used, when reported.
	Device string `json:"device,omitempty"`
	Error  string `json:"error,omitempty"`
}
