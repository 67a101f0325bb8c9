package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the lowercase reverse of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ApplyOverrides binds each key name in overrides to its action name
// Keys are single characters, rune aliases, or tcell key names ("Enter", "Ctrl-C")
// Returns error on unknown key or action names; m is left untouched on error
func (m *KeyMap) ApplyOverrides(overrides map[string]string) error {
	runes := make(map[rune]Action)
	keys := make(map[tcell.Key]Action)

	for keyStr, actionName := range overrides {
		action, err := ActionByName(actionName)
		if err != nil {
			return fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			runes[r] = action
			continue
		}
		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		keys[k] = action
	}

	for r, a := range runes {
		m.Runes[r] = a
	}
	for k, a := range keys {
		m.Keys[k] = a
	}
	return nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
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
