package input

// IntentType discriminates viewer actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit      // Esc, Ctrl+C
	IntentSpawn     // Enter with text in the line
	IntentSun       // Enter with the sun command
	IntentFocusNext // Tab
	IntentMassAdjust
	IntentEdit // Line buffer changed
)

// Intent is the result of one key press
type Intent struct {
	Type IntentType
	Text string  // IntentSpawn
	Mass float64 // IntentSpawn, IntentMassAdjust
}

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentSpawn:      "spawn",
	IntentSun:        "sun",
	IntentFocusNext:  "focus_next",
	IntentMassAdjust: "mass_adjust",
	IntentEdit:       "edit",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}
