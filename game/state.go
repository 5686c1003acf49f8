// state.go - Game states and the per-frame input snapshot
package game

// State is the top-level mode of the game.
type State int

const (
	StateActive State = iota
	StateMenu
	StateWin
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateMenu:
		return "menu"
	case StateWin:
		return "win"
	}
	return "unknown"
}

// Key is a logical input the game reacts to.
type Key int

const (
	KeyConfirm Key = iota
	KeyLeft
	KeyRight
	KeyLaunch
	KeyLevelUp
	KeyLevelDown
	KeyCount
)

func (k Key) String() string {
	switch k {
	case KeyConfirm:
		return "confirm"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyLaunch:
		return "launch"
	case KeyLevelUp:
		return "level-up"
	case KeyLevelDown:
		return "level-down"
	}
	return "unknown"
}

// Input is the set of keys held down this frame.
type Input [KeyCount]bool

// Set marks k as held or released. Out of range keys are ignored.
func (in *Input) Set(k Key, down bool) {
	if k >= 0 && k < KeyCount {
		in[k] = down
	}
}

// Held reports whether k is down.
func (in Input) Held(k Key) bool {
	return k >= 0 && k < KeyCount && in[k]
}

// keyLatch turns held keys into one-shot presses. A key fires once and is
// re-armed when it is released.
type keyLatch [KeyCount]bool

func (l *keyLatch) refresh(in Input) {
	for k := range l {
		if !in[k] {
			l[k] = false
		}
	}
}

func (l *keyLatch) fire(in Input, k Key) bool {
	if in.Held(k) && !l[k] {
		l[k] = true
		return true
	}
	return false
}
