// Package action maps named game actions onto keyboard, mouse and gamepad
// inputs.
package action

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/quiver/input"
)

//go:embed default_bindings.yaml
var defaultsFS embed.FS

const defaultBindings = "default_bindings.yaml"

var (
	ErrUnknownAction = errors.New("action: unknown action")
	ErrEmptyBinding  = errors.New("action: binding has no inputs")
)

// BindingSpec is one action as written in a bindings file.
type BindingSpec struct {
	Keys  []string `yaml:"keys"`
	Mouse []string `yaml:"mouse"`
	Pad   []string `yaml:"pad"`
	// Slot restricts Pad to one gamepad slot. Unset matches every slot.
	Slot *int `yaml:"slot"`
	// When is a tengo expression gating the action.
	When string `yaml:"when"`
}

type MapSpec struct {
	Actions map[string]BindingSpec `yaml:"actions"`
}

// Binding is a resolved BindingSpec.
type Binding struct {
	Keys  []input.Key
	Mouse []input.MouseButton
	Pad   []input.GamepadButton
	Slot  int
	gate  *gate
}

// Map resolves action names to combined button states.
type Map struct {
	bindings map[string]*Binding
	names    []string
	scratch  []input.ButtonState
}

// LoadMap reads a bindings file from disk. An empty path, or a path that
// does not exist, yields the embedded defaults.
func LoadMap(path string) (*Map, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			m, err := ParseMap(data)
			if err != nil {
				return nil, fmt.Errorf("action: load %s: %w", path, err)
			}
			return m, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("action: load %s: %w", path, err)
		}
	}
	return Default()
}

// Default returns the embedded bindings.
func Default() (*Map, error) {
	data, err := defaultsFS.ReadFile(defaultBindings)
	if err != nil {
		return nil, fmt.Errorf("action: load %s: %w", defaultBindings, err)
	}
	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("action: load %s: %w", defaultBindings, err)
	}
	return m, nil
}

// ParseMap decodes and resolves a bindings document.
func ParseMap(data []byte) (*Map, error) {
	var spec MapSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return NewMap(spec)
}

func NewMap(spec MapSpec) (*Map, error) {
	m := &Map{bindings: make(map[string]*Binding, len(spec.Actions))}
	for name, bs := range spec.Actions {
		b, err := resolve(bs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		m.bindings[name] = b
		m.names = append(m.names, name)
	}
	sort.Strings(m.names)
	return m, nil
}

func resolve(bs BindingSpec) (*Binding, error) {
	if len(bs.Keys) == 0 && len(bs.Mouse) == 0 && len(bs.Pad) == 0 {
		return nil, ErrEmptyBinding
	}
	b := &Binding{Slot: -1}
	for _, s := range bs.Keys {
		k, ok := input.ParseKey(s)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", s)
		}
		b.Keys = append(b.Keys, k)
	}
	for _, s := range bs.Mouse {
		mb, ok := input.ParseMouseButton(s)
		if !ok {
			return nil, fmt.Errorf("unknown mouse button %q", s)
		}
		b.Mouse = append(b.Mouse, mb)
	}
	for _, s := range bs.Pad {
		pb, ok := input.ParseGamepadButton(s)
		if !ok {
			return nil, fmt.Errorf("unknown gamepad button %q", s)
		}
		b.Pad = append(b.Pad, pb)
	}
	if bs.Slot != nil {
		if *bs.Slot < 0 || *bs.Slot >= input.MaxGamepads {
			return nil, fmt.Errorf("gamepad slot %d out of range", *bs.Slot)
		}
		b.Slot = *bs.Slot
	}
	if bs.When != "" {
		g, err := compileGate(bs.When)
		if err != nil {
			return nil, fmt.Errorf("when: %w", err)
		}
		b.gate = g
	}
	return b, nil
}

// Names lists the actions in sorted order.
func (m *Map) Names() []string {
	return m.names
}

func (m *Map) Binding(name string) (*Binding, bool) {
	b, ok := m.bindings[name]
	return b, ok
}

// State is the combined state of action name in s. An action whose gate
// evaluates false reports NotPressed.
func (m *Map) State(s *input.Snapshot, name string) (input.ButtonState, error) {
	b, ok := m.bindings[name]
	if !ok {
		return input.NotPressed, fmt.Errorf("%w %q", ErrUnknownAction, name)
	}

	states := m.scratch[:0]
	for _, k := range b.Keys {
		states = append(states, s.Key(k))
	}
	for _, mb := range b.Mouse {
		states = append(states, s.MouseButton(mb))
	}
	for pad := 0; pad < input.MaxGamepads; pad++ {
		if b.Slot >= 0 && pad != b.Slot {
			continue
		}
		if !s.Connected(pad) {
			continue
		}
		for _, pb := range b.Pad {
			states = append(states, s.GamepadButton(pad, pb))
		}
	}
	m.scratch = states

	state := Combine(states...)
	if state == input.NotPressed || b.gate == nil {
		return state, nil
	}
	open, err := b.gate.eval(s)
	if err != nil {
		return input.NotPressed, fmt.Errorf("action: %s: when: %w", name, err)
	}
	if !open {
		return input.NotPressed, nil
	}
	return state, nil
}

// Down reports whether action name is Pressed or Held. Unknown actions and
// gate failures read as up.
func (m *Map) Down(s *input.Snapshot, name string) bool {
	st, err := m.State(s, name)
	return err == nil && st.IsDown()
}

// Fill writes every action's state into dst and returns the first gate
// error, if any.
func (m *Map) Fill(s *input.Snapshot, dst map[string]input.ButtonState) error {
	var first error
	for _, name := range m.names {
		st, err := m.State(s, name)
		if err != nil && first == nil {
			first = err
		}
		dst[name] = st
	}
	return first
}
