// autopilot.go - Input synthesized from the game state, for headless runs
package game

// autopilotSlack is how far off-center the ball may be before the paddle
// starts chasing it.
const autopilotSlack = 8

// Autopilot returns an input snapshot that plays the game: it confirms the
// menu and win screens, launches a stuck ball and keeps the paddle under
// the ball. Confirm alternates between frames so the edge-triggered menu
// keys keep firing.
func (g *Game) Autopilot() Input {
	var in Input
	switch g.State {
	case StateMenu, StateWin:
		in.Set(KeyConfirm, !g.latch[KeyConfirm])
		return in
	case StateActive:
	}

	if g.Ball.Stuck {
		in.Set(KeyLaunch, true)
		return in
	}

	target := g.Ball.Center().X()
	center := g.Paddle.Position.X() + g.Paddle.Size.X()/2
	switch {
	case target < center-autopilotSlack:
		in.Set(KeyLeft, true)
	case target > center+autopilotSlack:
		in.Set(KeyRight, true)
	}
	return in
}
