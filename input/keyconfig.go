package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Sentinel errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key name")
)

// Rune aliases for keys that are awkward to write bare in config files
var runeAliases = map[string]rune{
	"space": ' ',
}

// keysByName is tcell.KeyNames reversed, lowercased
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyTable applies action -> key name bindings on top of the defaults
// Binding a key to "none" unbinds it
func LoadKeyTable(bindings map[string][]string) (*KeyTable, error) {
	kt := DefaultKeyTable()

	for actionName, keyNames := range bindings {
		action, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, actionName)
		}
		for _, keyName := range keyNames {
			if err := kt.bind(keyName, action); err != nil {
				return nil, fmt.Errorf("action %q: %w", actionName, err)
			}
		}
	}

	return kt, nil
}

func (kt *KeyTable) bind(keyName string, action Action) error {
	if r, ok := resolveRune(keyName); ok {
		setOrDelete(kt.Runes, r, action)
		return nil
	}
	if k, ok := keysByName[strings.ToLower(keyName)]; ok {
		setOrDelete(kt.Keys, k, action)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, keyName)
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func setOrDelete[K comparable](m map[K]Action, k K, action Action) {
	if action == ActionNone {
		delete(m, k)
		return
	}
	m[k] = action
}
