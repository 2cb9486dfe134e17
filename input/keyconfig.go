package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeys indexes tcell key names case-insensitively ("left", "enter", "ctrl-c")
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	// tcell spells it "Esc"
	m["escape"] = tcell.KeyEscape
	return m
}()

// LoadKeyConfig builds a sparse override KeyTable from action name → key names
// Returns error on unknown action names or key names
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Intent),
		Runes:       make(map[rune]Intent),
	}

	for action, keys := range bindings {
		intent, ok := IntentByName(strings.ToLower(strings.TrimSpace(action)))
		if !ok {
			return nil, fmt.Errorf("unknown action: %q", action)
		}

		for _, keyStr := range keys {
			if err := kt.bind(keyStr, intent); err != nil {
				return nil, fmt.Errorf("action %q: %w", action, err)
			}
		}
	}

	return kt, nil
}

// bind resolves a key name to a rune or a special key and records intent for it
func (kt *KeyTable) bind(keyStr string, intent Intent) error {
	if r, ok := runeAliases[strings.ToLower(keyStr)]; ok {
		kt.Runes[r] = intent
		return nil
	}

	if runes := []rune(keyStr); len(runes) == 1 {
		kt.Runes[runes[0]] = intent
		return nil
	}

	if k, ok := specialKeys[strings.ToLower(keyStr)]; ok {
		kt.SpecialKeys[k] = intent
		return nil
	}

	return fmt.Errorf("unknown key name: %q", keyStr)
}
