package ebitenhost

// syntheticInput is one injected frame of pointer input. Screen coordinates
// are used, exactly as real mouse input arrives.
type syntheticInput struct {
	x, y    float64
	pressed bool
	wheel   float64
	// wheelOnly leaves the button state of the previous frame untouched.
	wheelOnly bool
}

// frame builds the inputState this event stands for, given the previous one.
func (s syntheticInput) frame(prev inputState) inputState {
	in := inputState{mouseX: s.x, mouseY: s.y, left: s.pressed, wheelY: s.wheel}
	if s.wheelOnly {
		in.left = prev.left
	}
	return in
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next Update instead of real mouse input.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticInput{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticInput{x: x, y: y, pressed: true})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticInput{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectWheel queues one wheel notch at the given screen coordinates.
// Positive delta scrolls up (zooms in).
func (g *Game) InjectWheel(x, y, delta float64) {
	g.injectQueue = append(g.injectQueue, syntheticInput{x: x, y: y, wheel: delta, wheelOnly: true})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		g.InjectMove(x, y)
	}
	g.InjectRelease(toX, toY)
}

// popInjected removes and returns the oldest queued event.
func (g *Game) popInjected() (syntheticInput, bool) {
	if len(g.injectQueue) == 0 {
		return syntheticInput{}, false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	return evt, true
}
