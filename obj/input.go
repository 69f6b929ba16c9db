package obj

import "sync/atomic"

// Action is a logical input name. Hosts map their own keys onto actions.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJumpUp
	ActionJumpSpace
	ActionJumpW
	ActionActivate

	actionCount
)

var actionNames = [...]string{
	ActionMoveLeft:  "move-left",
	ActionMoveRight: "move-right",
	ActionJumpUp:    "jump-up",
	ActionJumpSpace: "jump-space",
	ActionJumpW:     "jump-w",
	ActionActivate:  "activate",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// JumpActions are the synonyms that all start a jump.
var JumpActions = []Action{ActionJumpUp, ActionJumpSpace, ActionJumpW}

// InputState holds the pressed state of every action. The host writes it
// whenever a key changes; physics samples it once per tick. Each action is
// an independent atomic flag so a host may write from its own goroutine.
type InputState struct {
	keys [actionCount]atomic.Bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Set records a press (true) or release (false). Unknown actions are ignored.
func (s *InputState) Set(a Action, pressed bool) {
	if s == nil || a < 0 || a >= actionCount {
		return
	}
	s.keys[a].Store(pressed)
}

func (s *InputState) Press(a Action)   { s.Set(a, true) }
func (s *InputState) Release(a Action) { s.Set(a, false) }

// Pressed reports whether a is currently held.
func (s *InputState) Pressed(a Action) bool {
	if s == nil || a < 0 || a >= actionCount {
		return false
	}
	return s.keys[a].Load()
}

// AnyPressed reports whether at least one of actions is held.
func (s *InputState) AnyPressed(actions ...Action) bool {
	for _, a := range actions {
		if s.Pressed(a) {
			return true
		}
	}
	return false
}

// Reset releases every action.
func (s *InputState) Reset() {
	if s == nil {
		return
	}
	for i := range s.keys {
		s.keys[i].Store(false)
	}
}
