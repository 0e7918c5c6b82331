package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/spearfall/internal/domain/entity"
)

// Recorder captures the command stream of a session
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record appends one tick. cmds is copied.
func (r *Recorder) Record(dt float64, cmds []entity.Command) {
	if !r.recording {
		return
	}
	f := Frame{F: len(r.data.Frames), DT: dt}
	if len(cmds) > 0 {
		f.Cmds = append([]entity.Command(nil), cmds...)
	}
	r.data.Frames = append(r.data.Frames, f)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the recording as JSON
func (r *Recorder) Save(filename string) error {
	data, err := json.Marshal(r.data)
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	return nil
}

// GenerateFilename returns a timestamped replay file name
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
