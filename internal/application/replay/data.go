// Package replay records and plays back the player commands of a session.
//
// The world step is deterministic for a given stage, seed and command
// stream, so a replay holds nothing else.
package replay

import "github.com/younwookim/spearfall/internal/domain/entity"

// Version of the replay file format
const Version = "2.0"

// Frame records the commands applied on one simulated tick
type Frame struct {
	F    int              `json:"f"`           // Frame number
	DT   float64          `json:"dt"`          // Step length, seconds
	Cmds []entity.Command `json:"c,omitempty"` // Player commands in order
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string  `json:"version"`
	Seed      int64   `json:"seed"`
	Stage     string  `json:"stage"`
	StartTime string  `json:"startTime"`
	Frames    []Frame `json:"frames"`
}
