// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, intro, playing) implements the Scene interface
// to handle its own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gallery/internal/application/state"
)

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update runs one frame.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Router returns the scene that presents a screen. Scenes use it to find
// their successor without knowing each other.
type Router interface {
	SceneFor(screen state.Screen) Scene
}

// Screens routes each screen to a fixed scene
type Screens struct {
	Title   Scene
	Intro   Scene
	Playing Scene
}

// SceneFor implements Router
func (s *Screens) SceneFor(screen state.Screen) Scene {
	switch screen {
	case state.ScreenIntro:
		return s.Intro
	case state.ScreenPlaying:
		return s.Playing
	default:
		return s.Title
	}
}

// Transition returns the scene for the current screen when it differs
// from the screen the caller presents, or nil to stay
func Transition(r Router, s *state.GameState, presenting state.Screen) Scene {
	if s.Screen() == presenting {
		return nil
	}
	return r.SceneFor(s.Screen())
}
