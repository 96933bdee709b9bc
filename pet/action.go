package pet

import "fmt"

// Action is a discrete state mutation requested by input
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Apply performs one input action and reports whether the loop should quit
// Moves are one world unit; y grows toward the top of the canvas
func (s *State) Apply(a Action) (quit bool) {
	switch a {
	case ActionMoveDown:
		s.moveBy(0, 1)
	case ActionMoveUp:
		s.moveBy(0, -1)
	case ActionMoveRight:
		s.moveBy(1, 0)
	case ActionMoveLeft:
		s.moveBy(-1, 0)
	case ActionQuit:
		return true
	}
	return false
}
