package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerKind is the phase of a pointer event
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a touch or mouse event in canvas coordinates
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
	At   time.Duration
}

// PointerPoller produces the pointer events of one frame
type PointerPoller interface {
	Poll(now time.Duration) []PointerEvent
}

// PointerSource polls Ebiten touch and mouse state once per frame and
// turns it into Down/Move/Up events. Touch wins over the mouse. Only one
// pointer is tracked at a time.
type PointerSource struct {
	touching bool
	touchID  ebiten.TouchID
	mouse    bool

	// Ebiten reports no position for a released touch
	lastX, lastY int

	touchIDs []ebiten.TouchID
	events   []PointerEvent
}

// NewPointerSource creates a new pointer source
func NewPointerSource() *PointerSource {
	return &PointerSource{
		touchIDs: make([]ebiten.TouchID, 0, 4),
		events:   make([]PointerEvent, 0, 2),
	}
}

// Reset forgets any tracked pointer. Releases that happen while nobody
// polls are never seen, so a held pointer would otherwise block new presses.
func (p *PointerSource) Reset() {
	p.touching = false
	p.touchID = 0
	p.mouse = false
	p.events = p.events[:0]
}

// Poll returns this frame's events. The slice is reused on the next call.
func (p *PointerSource) Poll(now time.Duration) []PointerEvent {
	p.events = p.events[:0]

	switch {
	case p.touching:
		p.pollTouch(now)
	case p.mouse:
		p.pollMouse(now)
	default:
		p.pollPress(now)
	}
	return p.events
}

func (p *PointerSource) pollPress(now time.Duration) {
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.touching = true
		p.touchID = p.touchIDs[0]
		x, y := ebiten.TouchPosition(p.touchID)
		p.emit(PointerDown, x, y, now)
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.mouse = true
		x, y := ebiten.CursorPosition()
		p.emit(PointerDown, x, y, now)
	}
}

func (p *PointerSource) pollTouch(now time.Duration) {
	if inpututil.IsTouchJustReleased(p.touchID) {
		p.touching = false
		p.emit(PointerUp, p.lastX, p.lastY, now)
		return
	}
	x, y := ebiten.TouchPosition(p.touchID)
	if x != p.lastX || y != p.lastY {
		p.emit(PointerMove, x, y, now)
	}
}

func (p *PointerSource) pollMouse(now time.Duration) {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.mouse = false
		p.emit(PointerUp, x, y, now)
		return
	}
	if x != p.lastX || y != p.lastY {
		p.emit(PointerMove, x, y, now)
	}
}

func (p *PointerSource) emit(kind PointerKind, x, y int, now time.Duration) {
	p.lastX, p.lastY = x, y
	p.events = append(p.events, PointerEvent{Kind: kind, X: float64(x), Y: float64(y), At: now})
}

// JustTapped reports whether the pointer was pressed this frame. Menu
// screens use it instead of full gesture recognition.
func JustTapped() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
