package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/panzoom"
)

// inputState holds the polled state of inputs for a single frame.
// Polling is kept apart from handling so frames can be replayed in tests.
type inputState struct {
	mouseX, mouseY float64
	left           bool
	wheelY         float64 // positive scrolls up

	reset       bool
	toggleHUD   bool
	toggleDebug bool
	quit        bool
}

// pollInput reads the current mouse and keyboard state from ebiten.
func pollInput() inputState {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return inputState{
		mouseX: float64(mx),
		mouseY: float64(my),
		left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		wheelY: wy,

		reset:       inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.Key0),
		toggleHUD:   inpututil.IsKeyJustPressed(ebiten.KeyH),
		toggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyD),
		quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// translateInput turns the difference between two polled frames into
// viewer events. A move is reported before a button change so a drag that
// moved and released within one frame still pans up to the release point.
func translateInput(target string, prev, cur inputState) []panzoom.Event {
	var events []panzoom.Event
	x, y := cur.mouseX, cur.mouseY

	if x != prev.mouseX || y != prev.mouseY {
		events = append(events, panzoom.PointerMove(target, x, y))
	}
	switch {
	case cur.left && !prev.left:
		events = append(events, panzoom.PointerDown(target, x, y))
	case !cur.left && prev.left:
		events = append(events, panzoom.PointerUp(target, x, y))
	}
	if cur.wheelY != 0 {
		// ebiten reports positive y for wheel-up, the legacy wheelDelta sign.
		events = append(events, panzoom.Wheel(target, x, y, panzoom.WheelMouseWheel, cur.wheelY))
	}
	return events
}
