package input

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordcosmo/parameter"
)

// Machine turns key events into intents and holds the text line, spawn mass and focus
// Not safe for concurrent use; the viewer loop owns it
type Machine struct {
	line      []rune
	spawnMass float64
	focus     Focus
}

// NewMachine creates a machine with an empty line and the given spawn mass
func NewMachine(spawnMass float64) *Machine {
	m := &Machine{
		line: make([]rune, 0, parameter.InputMaxRunes),
	}
	m.SetSpawnMass(spawnMass)
	return m
}

// Line returns the pending text
func (m *Machine) Line() string {
	return string(m.line)
}

func (m *Machine) SpawnMass() float64 {
	return m.spawnMass
}

// SetSpawnMass clamps to [SpawnMassMin, SpawnMassMax]; NaN resets to the default
func (m *Machine) SetSpawnMass(mass float64) {
	if mass != mass {
		mass = parameter.SpawnMassDefault
	}
	m.spawnMass = max(parameter.SpawnMassMin, min(parameter.SpawnMassMax, mass))
}

// Focus returns the focus tracker
func (m *Machine) Focus() *Focus {
	return &m.focus
}

// HandleKey processes one key event
func (m *Machine) HandleKey(ev *tcell.EventKey) Intent {
	return m.handle(ev.Key(), ev.Rune(), ev.Modifiers())
}

func (m *Machine) handle(key tcell.Key, r rune, mod tcell.ModMask) Intent {
	if key == tcell.KeyRune && mod&tcell.ModCtrl != 0 {
		if r == 'c' || r == 'C' {
			return Intent{Type: IntentQuit}
		}
		return Intent{}
	}

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}

	case tcell.KeyTab:
		m.focus.Next()
		return Intent{Type: IntentFocusNext}

	case tcell.KeyUp:
		m.SetSpawnMass(m.spawnMass + parameter.SpawnMassStep)
		return Intent{Type: IntentMassAdjust, Mass: m.spawnMass}

	case tcell.KeyDown:
		m.SetSpawnMass(m.spawnMass - parameter.SpawnMassStep)
		return Intent{Type: IntentMassAdjust, Mass: m.spawnMass}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(m.line) == 0 {
			return Intent{}
		}
		m.line = m.line[:len(m.line)-1]
		return Intent{Type: IntentEdit}

	case tcell.KeyEnter:
		return m.submit()

	case tcell.KeyRune:
		if !unicode.IsPrint(r) || len(m.line) >= parameter.InputMaxRunes {
			return Intent{}
		}
		m.line = append(m.line, r)
		return Intent{Type: IntentEdit}
	}
	return Intent{}
}

// submit consumes the line; blank lines are dropped
func (m *Machine) submit() Intent {
	text := strings.TrimSpace(string(m.line))
	m.line = m.line[:0]
	switch {
	case text == "":
		return Intent{}
	case strings.EqualFold(text, parameter.SunCommand):
		return Intent{Type: IntentSun}
	default:
		return Intent{Type: IntentSpawn, Text: text, Mass: m.spawnMass}
	}
}
