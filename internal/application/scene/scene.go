// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The game loop forwards Update and
// Draw to the current scene and switches scenes when Update returns one.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene
	// replaces this one; a non-nil error ends the game loop
	// (ebiten.Termination for a normal quit).
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}
