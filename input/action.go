package input

import (
	"strings"

	"github.com/lixenwraith/vi-snake/core"
)

// Action is what a key press asks the game to do
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionQuit
	actionCount
)

// actionNames are the canonical names used in key config files
var actionNames = [actionCount]string{"none", "up", "down", "left", "right", "pause", "quit"}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a config action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// Direction maps steering actions to a direction
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionUp:
		return core.Up, true
	case ActionDown:
		return core.Down, true
	case ActionLeft:
		return core.Left, true
	case ActionRight:
		return core.Right, true
	default:
		return 0, false
	}
}
