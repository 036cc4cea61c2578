package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Printable keys, matched on tcell.KeyRune
	Runes map[rune]Action

	// Arrows, Esc and other non-rune keys
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the stock bindings: wasd, vi hjkl and arrows steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionUp, 'k': ActionUp,
			's': ActionDown, 'j': ActionDown,
			'a': ActionLeft, 'h': ActionLeft,
			'd': ActionRight, 'l': ActionRight,
			' ': ActionPause,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// Resolve returns the action bound to ev, ActionNone if unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
