package entity

// MagazineSize is the number of rounds in a full magazine
const MagazineSize = 6

// Player holds the player's vitals
type Player struct {
	Lives int
	Ammo  int
}

// NewPlayer creates a player with a full magazine
func NewPlayer(lives int) *Player {
	return &Player{
		Lives: lives,
		Ammo:  MagazineSize,
	}
}

// Shoot spends one round. Returns false when the magazine is empty.
func (p *Player) Shoot() bool {
	if p.Ammo <= 0 {
		return false
	}
	p.Ammo--
	return true
}

// Reload refills the magazine. Returns false when it is already full.
func (p *Player) Reload() bool {
	if p.Ammo >= MagazineSize {
		return false
	}
	p.Ammo = MagazineSize
	return true
}

// LoseLife removes one life and returns true if none are left
func (p *Player) LoseLife() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives <= 0
}

// AddLives grants extra lives
func (p *Player) AddLives(n int) {
	p.Lives += n
}
