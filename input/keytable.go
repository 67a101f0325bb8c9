package input

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// KeyMap maps terminal keys to actions
// Printable keys are matched by rune, everything else by tcell.Key
type KeyMap struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Runes: map[rune]Action{
			' ': ActionThrow,
			't': ActionThrow,
			'd': ActionDetonate,
			'+': ActionForceUp,
			'=': ActionForceUp,
			'-': ActionForceDown,
			'h': ActionFaceLeft,
			'l': ActionFaceRight,
			'r': ActionReset,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyEnter:  ActionDetonate,
			tcell.KeyUp:     ActionForceUp,
			tcell.KeyDown:   ActionForceDown,
			tcell.KeyLeft:   ActionFaceLeft,
			tcell.KeyRight:  ActionFaceRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Resolve returns the action bound to ev, ActionNone if unbound
func (m *KeyMap) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return m.Runes[ev.Rune()]
	}
	return m.Keys[ev.Key()]
}

// Binding is a printable key → action pair
type Binding struct {
	Key    string
	Action Action
}

// Bindings lists all bound keys sorted by action then key
func (m *KeyMap) Bindings() []Binding {
	out := make([]Binding, 0, len(m.Runes)+len(m.Keys))
	for r, a := range m.Runes {
		if a == ActionNone {
			continue
		}
		out = append(out, Binding{Key: runeName(r), Action: a})
	}
	for k, a := range m.Keys {
		if a == ActionNone {
			continue
		}
		out = append(out, Binding{Key: keyName(k), Action: a})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func runeName(r rune) string {
	for alias, v := range runeAliases {
		if v == r {
			return alias
		}
	}
	return string(r)
}

func keyName(k tcell.Key) string {
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
