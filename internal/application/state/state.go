package state

// Screen is the top-level screen the game is showing
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenIntro
	ScreenPlaying
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "Title"
	case ScreenIntro:
		return "Intro"
	case ScreenPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}
