package termsrc

import (
	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/quiver/input"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyArrowUp,
	tcell.KeyDown:       input.KeyArrowDown,
	tcell.KeyLeft:       input.KeyArrowLeft,
	tcell.KeyRight:      input.KeyArrowRight,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

var punctuation = map[rune]input.Key{
	' ':  input.KeySpace,
	'-':  input.KeyMinus,
	'=':  input.KeyEqual,
	'[':  input.KeyBracketLeft,
	']':  input.KeyBracketRight,
	'\\': input.KeyBackslash,
	';':  input.KeySemicolon,
	'\'': input.KeyQuote,
	',':  input.KeyComma,
	'.':  input.KeyPeriod,
	'/':  input.KeySlash,
	'`':  input.KeyBackquote,
}

// shiftedPunctuation maps the US layout's shifted symbols onto the key that
// produces them.
var shiftedPunctuation = map[rune]input.Key{
	')': input.KeyDigit0,
	'!': input.KeyDigit1,
	'@': input.KeyDigit2,
	'#': input.KeyDigit3,
	'$': input.KeyDigit4,
	'%': input.KeyDigit5,
	'^': input.KeyDigit6,
	'&': input.KeyDigit7,
	'*': input.KeyDigit8,
	'(': input.KeyDigit9,
	'_': input.KeyMinus,
	'+': input.KeyEqual,
	'{': input.KeyBracketLeft,
	'}': input.KeyBracketRight,
	'|': input.KeyBackslash,
	':': input.KeySemicolon,
	'"': input.KeyQuote,
	'<': input.KeyComma,
	'>': input.KeyPeriod,
	'?': input.KeySlash,
	'~': input.KeyBackquote,
}

var mouseMasks = [...]struct {
	mask tcell.ButtonMask
	in   input.MouseButton
}{
	{tcell.ButtonPrimary, input.MouseButtonLeft},
	{tcell.ButtonSecondary, input.MouseButtonRight},
	{tcell.ButtonMiddle, input.MouseButtonMiddle},
}

// TranslateKey maps a tcell key event onto the modeled key set.
func TranslateKey(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() != tcell.KeyRune {
		k, ok := specialKeys[ev.Key()]
		return k, ok
	}
	r := ev.Rune()
	switch {
	case r >= 'a' && r <= 'z':
		return input.KeyA + input.Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return input.KeyA + input.Key(r-'A'), true
	case r >= '0' && r <= '9':
		return input.KeyDigit0 + input.Key(r-'0'), true
	}
	if k, ok := punctuation[r]; ok {
		return k, true
	}
	k, ok := shiftedPunctuation[r]
	return k, ok
}

// Shifted reports whether the rune of a KeyRune event needs shift held.
// tcell strips ModShift from rune events, so the rune is all there is.
func Shifted(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		return true
	}
	_, ok := shiftedPunctuation[r]
	return ok
}

// Translator turns tcell events into input events. Terminals report key
// presses (and repeats) but never releases, so a key reported in one batch
// is released at the first later batch that does not repeat it.
type Translator struct {
	// Interrupted is set once Ctrl-C has been seen.
	Interrupted bool

	buttons tcell.ButtonMask
	held    map[input.Key]bool
	seen    map[input.Key]bool
	batch   []input.Event
}

func NewTranslator() *Translator {
	return &Translator{
		held: make(map[input.Key]bool),
		seen: make(map[input.Key]bool),
	}
}

// Batch translates one poll's worth of events, in order, and appends them
// to dst.
func (t *Translator) Batch(dst []input.Event, evs []tcell.Event) []input.Event {
	clear(t.seen)
	t.batch = t.batch[:0]
	for _, ev := range evs {
		t.batch = t.translate(t.batch, ev)
	}

	for k := range t.held {
		if !t.seen[k] {
			delete(t.held, k)
			dst = append(dst, input.KeyEvent(input.StateReleased, k))
		}
	}
	for _, ev := range t.batch {
		if ev.Kind == input.EventKey {
			if t.held[ev.Key] {
				continue
			}
			if ev.State == input.StatePressed {
				t.held[ev.Key] = true
			}
		}
		dst = append(dst, ev)
	}
	return dst
}

func (t *Translator) translate(dst []input.Event, ev tcell.Event) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			t.Interrupted = true
			return dst
		}
		dst = t.modifiers(dst, ev.Modifiers())
		if Shifted(ev) {
			dst = t.press(dst, input.KeyShiftLeft)
		}
		if k, ok := TranslateKey(ev); ok {
			dst = t.press(dst, k)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		dst = append(dst, input.MouseMoveEvent(float64(x), float64(y)))

		btn := ev.Buttons()
		for _, m := range mouseMasks {
			was, is := t.buttons&m.mask != 0, btn&m.mask != 0
			switch {
			case is && !was:
				dst = append(dst, input.MouseButtonEvent(input.StatePressed, m.in))
			case was && !is:
				dst = append(dst, input.MouseButtonEvent(input.StateReleased, m.in))
			}
		}
		t.buttons = btn

		var wx, wy float64
		if btn&tcell.WheelUp != 0 {
			wy++
		}
		if btn&tcell.WheelDown != 0 {
			wy--
		}
		if btn&tcell.WheelLeft != 0 {
			wx--
		}
		if btn&tcell.WheelRight != 0 {
			wx++
		}
		if wx != 0 || wy != 0 {
			dst = append(dst, input.MouseWheelEvent(wx, wy))
		}
	}
	return dst
}

func (t *Translator) modifiers(dst []input.Event, mod tcell.ModMask) []input.Event {
	if mod&tcell.ModShift != 0 {
		dst = t.press(dst, input.KeyShiftLeft)
	}
	if mod&tcell.ModCtrl != 0 {
		dst = t.press(dst, input.KeyControlLeft)
	}
	if mod&tcell.ModAlt != 0 {
		dst = t.press(dst, input.KeyAltLeft)
	}
	if mod&tcell.ModMeta != 0 {
		dst = t.press(dst, input.KeyMetaLeft)
	}
	return dst
}

func (t *Translator) press(dst []input.Event, k input.Key) []input.Event {
	if t.seen[k] {
		return dst
	}
	t.seen[k] = true
	return append(dst, input.KeyEvent(input.StatePressed, k))
}
