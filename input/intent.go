package input

// Intent is a decoded key action
type Intent uint8

const (
	IntentNone Intent = iota

	// Steering
	IntentLeft    // Left arrow, h
	IntentRight   // Right arrow, l
	IntentNeutral // Up/Down arrows, k, j

	// Race control
	IntentConfirm // Space, Enter: pause, resume, reset after crash

	// System
	IntentQuit        // q, Esc, Ctrl+C
	IntentToggleMute  // m
	IntentToggleDebug // F2
)

// actionNames maps canonical config names to intents; "none" unbinds a key
var actionNames = map[string]Intent{
	"none":         IntentNone,
	"left":         IntentLeft,
	"right":        IntentRight,
	"neutral":      IntentNeutral,
	"confirm":      IntentConfirm,
	"quit":         IntentQuit,
	"toggle_mute":  IntentToggleMute,
	"toggle_debug": IntentToggleDebug,
}

// IntentByName resolves a config action name
func IntentByName(name string) (Intent, bool) {
	i, ok := actionNames[name]
	return i, ok
}

func (i Intent) String() string {
	for name, v := range actionNames {
		if v == i {
			return name
		}
	}
	return "unknown"
}
