package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"sort"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/quiver/app"
	"github.com/milk9111/quiver/assets"
	"github.com/milk9111/quiver/config"
	"github.com/milk9111/quiver/input"
)

type viewer struct {
	log   *slog.Logger
	ui    *ebitenui.UI
	icons map[string]*ebiten.Image

	mouseText   *widget.Text
	keysText    *widget.Text
	padsText    *widget.Text
	actionsText *widget.Text

	cursor  input.Position
	pads    [input.MaxGamepads]padView
	states  map[string]input.ButtonState
	keys    []input.Key
	counter *pressCounter
	click   clicker
}

type padView struct {
	connected bool
	lx, ly    float64
	rx, ry    float64
}

func newViewer(cfg *config.Config, log *slog.Logger) (*viewer, error) {
	atlas, err := assets.LoadUIAtlas()
	if err != nil {
		return nil, err
	}
	icons, err := app.AtlasTextures(atlas)
	if err != nil {
		return nil, err
	}
	face, err := uiFace()
	if err != nil {
		return nil, err
	}
	counter, err := loadPressCounter(cfg.Save, log)
	if err != nil {
		return nil, err
	}

	v := &viewer{
		log:     log,
		icons:   icons,
		states:  make(map[string]input.ButtonState),
		counter: counter,
		click:   newClicker(log),
	}
	v.ui = v.buildUI(face)
	return v, nil
}

func (v *viewer) buildUI(face ebtext.Face) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	label := func() *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, colornames.White),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
	}
	v.mouseText = label()
	v.keysText = label()
	v.padsText = label()
	v.actionsText = label()

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(v.mouseText)
	panel.AddChild(v.keysText)
	panel.AddChild(v.padsText)
	panel.AddChild(v.actionsText)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (v *viewer) Update(f *app.Frame) error {
	v.cursor = f.Position()
	v.keys = f.AppendKeys(v.keys[:0])
	for pad := range v.pads {
		p := &v.pads[pad]
		p.connected = f.Connected(pad)
		p.lx, p.ly = f.Stick(pad, input.StickLeft)
		p.rx, p.ry = f.Stick(pad, input.StickRight)
	}

	clear(v.states)
	if f.Actions != nil {
		if err := f.Actions.Fill(f.Snapshot, v.states); err != nil {
			v.log.Debug("inputview: action gate failed", "error", err)
		}
	}
	for name, st := range v.states {
		if st == input.Pressed {
			v.counter.add(name)
		}
	}
	if f.MouseButton(input.MouseButtonLeft) == input.Pressed {
		v.click.play()
	}

	v.mouseText.Label = describeMouse(f.Snapshot)
	v.keysText.Label = describeKeys(v.keys, f.Snapshot)
	v.padsText.Label = describePads(f.Snapshot)
	v.actionsText.Label = describeActions(v.states, v.counter.counts)

	v.ui.Update()

	if f.Action("pause") == input.Pressed {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	if icon := v.icons["button"]; icon != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(v.cursor.X-8, v.cursor.Y-8)
		screen.DrawImage(icon, op)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if ring := v.icons["stick"]; ring != nil {
		for i, p := range v.pads {
			if !p.connected {
				continue
			}
			cx := float64(w) - 80 - float64(i)*72
			cy := float64(h) - 48
			for _, s := range [][2]float64{{p.lx, p.ly}, {p.rx, p.ry}} {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(cx+s[0]*12-8, cy+s[1]*12-8)
				screen.DrawImage(ring, op)
				cx += 28
			}
		}
	}

	v.ui.Draw(screen)
}

func (v *viewer) close() {
	v.counter.store()
}

func describeMouse(s *input.Snapshot) string {
	p, w := s.Position(), s.Wheel()
	return fmt.Sprintf("Mouse  %.0f,%.0f  scale %.2f  wheel %.1f,%.1f\nL %s  R %s  M %s",
		p.X, p.Y, s.Scale(), w.X, w.Y,
		s.MouseButton(input.MouseButtonLeft), s.MouseButton(input.MouseButtonRight), s.MouseButton(input.MouseButtonMiddle))
}

func describeKeys(keys []input.Key, s *input.Snapshot) string {
	if len(keys) == 0 {
		return "Keys   -"
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%s", k, s.Key(k)))
	}
	return "Keys   " + strings.Join(parts, " ")
}

func describePads(s *input.Snapshot) string {
	var b strings.Builder
	b.WriteString("Pads")
	for pad := 0; pad < input.MaxGamepads; pad++ {
		if !s.Connected(pad) {
			continue
		}
		fmt.Fprintf(&b, "\n  %d:", pad)
		for btn := input.GamepadButton(0); btn < input.GamepadButtonCount; btn++ {
			if st := s.GamepadButton(pad, btn); st != input.NotPressed {
				fmt.Fprintf(&b, " %s:%s", btn, st)
			}
		}
		lt, rt := s.GamepadAxis(pad, input.AxisLeftTrigger), s.GamepadAxis(pad, input.AxisRightTrigger)
		fmt.Fprintf(&b, " LT %.2f RT %.2f", lt, rt)
	}
	if b.Len() == len("Pads") {
		b.WriteString("   none")
	}
	return b.String()
}

func describeActions(states map[string]input.ButtonState, counts map[string]int) string {
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Actions")
	for _, name := range names {
		fmt.Fprintf(&b, "\n  %-6s %-11s %d", name, states[name], counts[name])
	}
	return b.String()
}
