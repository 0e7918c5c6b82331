// Package state holds the top-level run states of the playing scene.
package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateEditing // playing with the platform editor keys live
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateEditing:
		return "Editing"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateEditing
}
