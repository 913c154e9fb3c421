package system

// Intent represents an action the player's gestures resolved to
type Intent interface {
	isIntent()
}

// ShootIntent is a tap that made it past the fire-rate cooldown.
// Fired is false when the magazine was empty.
type ShootIntent struct {
	X, Y  float64
	Fired bool
}

func (ShootIntent) isIntent() {}

// ReloadIntent is an upward swipe. Reloaded is false when the magazine
// was already full.
type ReloadIntent struct {
	Reloaded bool
}

func (ReloadIntent) isIntent() {}
