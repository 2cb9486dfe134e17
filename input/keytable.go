package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*, function keys)
	SpecialKeys map[tcell.Key]Intent

	// Printable runes, matched when the event key is tcell.KeyRune
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyUp:     IntentNeutral,
			tcell.KeyDown:   IntentNeutral,
			tcell.KeyEnter:  IntentConfirm,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyF2:     IntentToggleDebug,
		},
		Runes: map[rune]Intent{
			'h': IntentLeft,
			'l': IntentRight,
			'k': IntentNeutral,
			'j': IntentNeutral,
			' ': IntentConfirm,
			'q': IntentQuit,
			'Q': IntentQuit,
			'm': IntentToggleMute,
		},
	}
}

// Resolve returns the intent bound to ev, IntentNone when unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// IntentNone entries in override delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
