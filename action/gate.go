package action

import (
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/quiver/input"
)

const gatePrelude = `
key := __input.key
mouse := __input.mouse
pad := __input.pad
is_down := __input.is_down
frame := __input.frame
`

// gateModules are the tengo stdlib modules a `when:` expression may import.
// Bindings files are user-editable, so os and fmt stay out.
var gateModules = []string{"math", "text", "times", "enum"}

// gate is a compiled `when:` expression. Inside the expression key(name),
// mouse(name) and pad(slot, name) return state names such as "held", and
// is_down(state) tests one.
type gate struct {
	src      string
	compiled *tengo.Compiled
	snap     *input.Snapshot
	env      *tengo.ImmutableMap
}

func compileGate(expr string) (*gate, error) {
	src := gatePrelude + "__result := (" + expr + ")\n"
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__input", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(gateModules...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	g := &gate{src: expr, compiled: compiled}
	g.env = g.buildEnv()
	return g, nil
}

func (g *gate) eval(s *input.Snapshot) (bool, error) {
	g.snap = s
	defer func() { g.snap = nil }()

	g.env.Value["frame"] = &tengo.Int{Value: int64(s.Frame())}
	if err := g.compiled.Set("__input", g.env); err != nil {
		return false, err
	}
	if err := g.compiled.Run(); err != nil {
		return false, err
	}
	return g.compiled.Get("__result").Bool(), nil
}

func (g *gate) buildEnv() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["key"] = &tengo.UserFunction{Name: "key", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if g.snap == nil || len(args) < 1 {
			return stateObject(input.NotPressed), nil
		}
		k, ok := input.ParseKey(objectAsString(args[0]))
		if !ok {
			return stateObject(input.NotPressed), nil
		}
		return stateObject(g.snap.Key(k)), nil
	}}

	values["mouse"] = &tengo.UserFunction{Name: "mouse", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if g.snap == nil || len(args) < 1 {
			return stateObject(input.NotPressed), nil
		}
		b, ok := input.ParseMouseButton(objectAsString(args[0]))
		if !ok {
			return stateObject(input.NotPressed), nil
		}
		return stateObject(g.snap.MouseButton(b)), nil
	}}

	values["pad"] = &tengo.UserFunction{Name: "pad", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if g.snap == nil || len(args) < 2 {
			return stateObject(input.NotPressed), nil
		}
		slot, ok := tengo.ToInt(args[0])
		if !ok {
			return stateObject(input.NotPressed), nil
		}
		b, ok := input.ParseGamepadButton(objectAsString(args[1]))
		if !ok {
			return stateObject(input.NotPressed), nil
		}
		return stateObject(g.snap.GamepadButton(slot, b)), nil
	}}

	values["is_down"] = &tengo.UserFunction{Name: "is_down", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		st, ok := input.ParseButtonState(objectAsString(args[0]))
		if ok && st.IsDown() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["frame"] = &tengo.Int{}

	return &tengo.ImmutableMap{Value: values}
}

func stateObject(s input.ButtonState) tengo.Object {
	return &tengo.String{Value: s.String()}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
