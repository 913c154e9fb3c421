package state

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/younwookim/gallery/internal/domain/entity"
	"github.com/younwookim/gallery/internal/infrastructure/config"
)

// GameState is the authoritative game state. It owns the player, every
// NPC roster and all transient effects, and applies every rule that
// involves more than one entity (damage, scoring, life loss, level up).
//
// GameState is not safe for concurrent use; a single frame driver owns it.
type GameState struct {
	cfg    *config.TuningConfig
	rng    *rand.Rand
	logger *log.Logger

	fieldW, fieldH float64
	now            time.Duration

	screen     Screen
	gameOver   bool
	playedOnce bool

	player           *entity.Player
	score            int
	level            int
	levelUpThreshold int
	firstShotHint    bool

	hostiles  entity.Roster
	neutrals  entity.Roster
	ambiguous entity.Roster
	pickups   entity.Roster

	hitMarkers    []HitMarker
	attackEffects []AttackEffect

	playerHit    Pulse
	hitByHostile bool
	reloadFlash  Pulse
	reloadShake  Pulse
}

// New creates a game state on the title screen
func New(cfg *config.TuningConfig, rng *rand.Rand) *GameState {
	s := &GameState{
		cfg:    cfg,
		rng:    rng,
		logger: log.Default(),
		fieldW: float64(cfg.Display.ScreenWidth),
		fieldH: float64(cfg.Display.ScreenHeight),
	}
	s.Reset()
	return s
}

// SetLogger replaces the logger used for game events
func (s *GameState) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	s.logger = l
}

// Reset reinitialises everything and returns to the title screen.
// It is the only way out of game over. Pending pulses and effects are
// discarded, so nothing started before the reset can touch the new game.
func (s *GameState) Reset() {
	s.screen = ScreenTitle
	s.gameOver = false
	s.player = entity.NewPlayer(s.cfg.Player.StartingLives)
	s.score = 0
	s.level = 1
	s.levelUpThreshold = s.cfg.Scoring.LevelUpThreshold
	s.firstShotHint = true

	s.hostiles = nil
	s.neutrals = nil
	s.ambiguous = nil
	s.pickups = nil
	s.hitMarkers = nil
	s.attackEffects = nil

	s.cancelPulses()
}

func (s *GameState) cancelPulses() {
	s.playerHit.Cancel()
	s.hitByHostile = false
	s.reloadFlash.Cancel()
	s.reloadShake.Cancel()
}

// Screen transitions

// SetScreen switches the current screen
func (s *GameState) SetScreen(screen Screen) {
	s.screen = screen
	if screen == ScreenPlaying {
		s.playedOnce = true
	}
}

// Start leaves the title screen. The intro is only shown before the
// first game; afterwards Start goes straight to play.
func (s *GameState) Start() bool {
	if s.screen != ScreenTitle {
		return false
	}
	if s.playedOnce {
		s.SetScreen(ScreenPlaying)
	} else {
		s.SetScreen(ScreenIntro)
	}
	return true
}

// Next leaves the intro screen
func (s *GameState) Next() bool {
	if s.screen != ScreenIntro {
		return false
	}
	s.SetScreen(ScreenPlaying)
	return true
}

// Simulating reports whether entities, collisions and input should run
func (s *GameState) Simulating() bool {
	return s.screen == ScreenPlaying && !s.gameOver
}

// Player actions

// Shoot spends a round. It returns false, changing nothing, when the
// magazine is empty; callers must not register a hit in that case.
func (s *GameState) Shoot() bool {
	if !s.player.Shoot() {
		return false
	}
	s.firstShotHint = false
	return true
}

// Reload refills the magazine and starts the reload feedback. It returns
// false, changing nothing, when the magazine is already full.
func (s *GameState) Reload() bool {
	if !s.player.Reload() {
		return false
	}
	d := config.Ms(s.cfg.Effects.ReloadFlashMs)
	s.reloadFlash.Start(s.now, d)
	s.reloadShake.Start(s.now, d)
	return true
}

// RegisterHit queues a hit marker at the shot's impact point
func (s *GameState) RegisterHit(x, y, radius float64) {
	s.hitMarkers = append(s.hitMarkers, HitMarker{X: x, Y: y, Radius: radius, CreatedAt: s.now})
}

// RegisterHostileAttack queues the deferred area effect of a hostile shot
func (s *GameState) RegisterHostileAttack(x, y float64) {
	s.attackEffects = append(s.attackEffects, AttackEffect{
		X:         x,
		Y:         y,
		CreatedAt: s.now,
		Duration:  config.Ms(s.cfg.Effects.AttackEffectMs),
		MaxRadius: math.Hypot(s.fieldW, s.fieldH),
	})
}

// Vitals and progression

// LoseLife removes a life and flashes the hit feedback. Reaching zero
// lives ends the game and cancels every pending pulse. After game over
// it does nothing.
func (s *GameState) LoseLife(fromHostile bool) {
	if s.gameOver {
		return
	}

	dead := s.player.LoseLife()
	s.playerHit.Start(s.now, config.Ms(s.cfg.Effects.PlayerHitFlashMs))
	s.hitByHostile = fromHostile

	if dead {
		s.gameOver = true
		s.cancelPulses()
		s.logger.Printf("[GameState] Game over: score %d, level %d", s.score, s.level)
	}
}

// AddLife grants extra lives
func (s *GameState) AddLife(n int) {
	s.player.AddLives(n)
}

// AddScore adds points and levels up once the threshold is crossed
func (s *GameState) AddScore(points int) {
	s.score += points
	if s.score < s.levelUpThreshold {
		return
	}

	s.level++
	if s.level > s.cfg.Scoring.ThemeCount {
		s.level = 1
	}
	s.levelUpThreshold += s.cfg.Scoring.LevelUpIncrement
	s.logger.Printf("[GameState] Level up: level %d, next at %d", s.level, s.levelUpThreshold)
}

// Entity registration

// AddHostile adds a hostile NPC
func (s *GameState) AddHostile(n *entity.NPC) { s.hostiles = append(s.hostiles, n) }

// AddNeutral adds a neutral NPC
func (s *GameState) AddNeutral(n *entity.NPC) { s.neutrals = append(s.neutrals, n) }

// AddAmbiguous adds an ambiguous NPC
func (s *GameState) AddAmbiguous(n *entity.NPC) { s.ambiguous = append(s.ambiguous, n) }

// AddPickup adds a life pickup
func (s *GameState) AddPickup(n *entity.NPC) { s.pickups = append(s.pickups, n) }

// Add routes an NPC to the roster for its kind
func (s *GameState) Add(n *entity.NPC) {
	switch n.Kind {
	case entity.KindHostile:
		s.AddHostile(n)
	case entity.KindNeutral:
		s.AddNeutral(n)
	case entity.KindAmbiguous:
		s.AddAmbiguous(n)
	case entity.KindPickup:
		s.AddPickup(n)
	}
}

// Simulation

// SetClock moves the clock without simulating, so input handled before
// Tick is stamped with the current frame's time
func (s *GameState) SetClock(now time.Duration) {
	s.now = now
}

// Tick advances the clock to now and, while simulating, updates every NPC,
// resolves hit markers and attack effects, and drops dead NPCs. Hostile
// shots become attack effects here; transformation, exit and expiry
// events are returned for the spawner.
func (s *GameState) Tick(now time.Duration) []entity.Event {
	s.now = now
	if !s.Simulating() {
		return nil
	}

	var events []entity.Event
	for _, roster := range s.rosters() {
		for _, n := range *roster {
			ev := n.Update(now, s.rng)
			switch ev.Kind {
			case entity.EventFired:
				s.RegisterHostileAttack(ev.X, ev.Y)
			case entity.EventTransformed, entity.EventExited, entity.EventExpired:
				events = append(events, ev)
			}
		}
	}

	s.ResolveHitMarkers()
	s.ResolveAttackEffects()
	s.compact()

	return events
}

// ResolveHitMarkers drops expired markers and tests the rest against every
// live NPC. Killing a hostile scores; killing a neutral or ambiguous NPC
// costs a life; hitting a pickup collects it.
func (s *GameState) ResolveHitMarkers() {
	if s.gameOver {
		return
	}

	ttl := config.Ms(s.cfg.Effects.HitMarkerMs)
	live := s.hitMarkers[:0]
	for _, m := range s.hitMarkers {
		if s.now-m.CreatedAt < ttl {
			live = append(live, m)
		}
	}
	clear(s.hitMarkers[len(live):])
	s.hitMarkers = live

	for _, m := range s.hitMarkers {
		if s.gameOver {
			break
		}
		for _, n := range s.hostiles {
			if n.Alive && entity.HitTest(n.Rect, m.X, m.Y, m.Radius) && n.TakeDamage(1) {
				s.AddScore(s.cfg.Scoring.HostileReward)
			}
		}
		for _, roster := range []entity.Roster{s.neutrals, s.ambiguous} {
			for _, n := range roster {
				if !s.gameOver && n.Alive && entity.HitTest(n.Rect, m.X, m.Y, m.Radius) && n.TakeDamage(1) {
					s.LoseLife(false)
				}
			}
		}
		if s.gameOver {
			break
		}
		for _, n := range s.pickups {
			if n.Alive && entity.HitTest(n.Rect, m.X, m.Y, m.Radius) {
				n.Alive = false
				s.AddLife(1)
			}
		}
	}

	s.compact()
}

// ResolveAttackEffects applies the damage of every fully grown attack
// effect exactly once and then drops it
func (s *GameState) ResolveAttackEffects() {
	if s.gameOver {
		return
	}

	pending := s.attackEffects[:0]
	for _, e := range s.attackEffects {
		if !e.DamageApplied && s.now-e.CreatedAt >= e.Duration {
			e.DamageApplied = true
			s.LoseLife(true)
		}
		if !e.DamageApplied {
			pending = append(pending, e)
		}
	}
	clear(s.attackEffects[len(pending):])
	s.attackEffects = pending
}

func (s *GameState) rosters() []*entity.Roster {
	return []*entity.Roster{&s.hostiles, &s.neutrals, &s.ambiguous, &s.pickups}
}

func (s *GameState) compact() {
	for _, roster := range s.rosters() {
		*roster = roster.Compact()
	}
}

// Read-only accessors for presentation

// Now returns the clock value of the last tick
func (s *GameState) Now() time.Duration { return s.now }

// FieldSize returns the playable field dimensions
func (s *GameState) FieldSize() (float64, float64) { return s.fieldW, s.fieldH }

// Screen returns the current screen
func (s *GameState) Screen() Screen { return s.screen }

// IsGameOver reports whether the game has ended
func (s *GameState) IsGameOver() bool { return s.gameOver }

// PlayedOnce reports whether a game has been started since launch
func (s *GameState) PlayedOnce() bool { return s.playedOnce }

// Lives returns the player's remaining lives
func (s *GameState) Lives() int { return s.player.Lives }

// Ammo returns the rounds left in the magazine
func (s *GameState) Ammo() int { return s.player.Ammo }

// Score returns the current score
func (s *GameState) Score() int { return s.score }

// Level returns the current level
func (s *GameState) Level() int { return s.level }

// LevelUpThreshold returns the score needed for the next level
func (s *GameState) LevelUpThreshold() int { return s.levelUpThreshold }

// BackgroundIndex returns which background theme the level uses
func (s *GameState) BackgroundIndex() int {
	if s.cfg.Scoring.ThemeCount <= 0 {
		return 0
	}
	return (s.level - 1) % s.cfg.Scoring.ThemeCount
}

// Hostiles returns the hostile roster
func (s *GameState) Hostiles() entity.Roster { return s.hostiles }

// Neutrals returns the neutral roster
func (s *GameState) Neutrals() entity.Roster { return s.neutrals }

// Ambiguous returns the ambiguous roster
func (s *GameState) Ambiguous() entity.Roster { return s.ambiguous }

// Pickups returns the pickup roster
func (s *GameState) Pickups() entity.Roster { return s.pickups }

// HitMarkers returns the live hit markers
func (s *GameState) HitMarkers() []HitMarker { return s.hitMarkers }

// AttackEffects returns the attack effects still expanding
func (s *GameState) AttackEffects() []AttackEffect { return s.attackEffects }

// IsPlayerHit reports whether the hit flash is showing
func (s *GameState) IsPlayerHit() bool { return s.playerHit.Active(s.now) }

// IsHitByHostile reports whether the current hit flash came from gunfire
func (s *GameState) IsHitByHostile() bool { return s.hitByHostile && s.playerHit.Active(s.now) }

// ReloadSucceeded reports whether the reload confirmation is showing
func (s *GameState) ReloadSucceeded() bool { return s.reloadFlash.Active(s.now) }

// ReloadShaking reports whether the reload shake is running
func (s *GameState) ReloadShaking() bool { return s.reloadShake.Active(s.now) }

// FirstShotHintVisible reports whether the "tap to shoot" hint is showing
func (s *GameState) FirstShotHintVisible() bool { return s.firstShotHint }
