package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/transcriper/diarize/internal/types"
)

func TestEmit_StdoutAndFileIdentical(t *testing.T) {
	t.Parallel()

	res := types.Result{
		Success: true,
		Speakers: []types.SpeakerSegment{
			{Speaker: "SPEAKER_00", StartTime: 0.5, EndTime: 2.0, Duration: 1.5, Confidence: 1.0},
		},
		TotalSpeakers: 1,
		TotalSegments: 1,
		ModelVersion:  "3.1",
		DeviceUsed:    "cpu",
	}

	out := filepath.Join(t.TempDir(), "result.json")
	var buf bytes.Buffer
	if err := emit(&buf, res, out); err != nil {
		t.Fatalf("emit: %v", err)
	}

	fileBytes, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if !bytes.Equal(fileBytes, buf.Bytes()) {
		t.Fatalf("file and stdout differ:\nfile: %s\nstdout: %s", fileBytes, buf.Bytes())
	}

	// 2-space indentation, one parseable document.
	if !strings.Contains(buf.String(), "\n  \"success\": true") {
		t.Fatalf("expected 2-space indented JSON, got: %s", buf.String())
	}
	var parsed types.Result
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("stdout is not one parseable document: %v", err)
	}
}

func TestEmit_OverwritesExistingFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "result.json")
	if err := os.WriteFile(out, []byte(strings.Repeat("x", 4096)), 0o644); err != nil {
		t.Fatalf("seed output file: %v", err)
	}

	var buf bytes.Buffer
	if err := emit(&buf, types.Failure{Error: "boom", ErrorType: "Unknown"}, out); err != nil {
		t.Fatalf("emit: %v", err)
	}

	fileBytes, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if !bytes.Equal(fileBytes, buf.Bytes()) {
		t.Fatal("previous file content must be fully replaced")
	}
}

func TestEmit_NoFileWhenPathEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := emit(&buf, types.Failure{Error: "audio file not found: /nope.wav"}, ""); err != nil {
		t.Fatalf("emit: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["success"] != false {
		t.Fatalf("expected success=false, got %v", doc["success"])
	}
	if !strings.Contains(doc["error"].(string), "/nope.wav") {
		t.Fatalf("error must name the path, got %v", doc["error"])
	}
	if _, present := doc["error_type"]; present {
		t.Fatal("preflight failure must not carry error_type")
	}
}
