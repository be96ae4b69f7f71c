package ebitensrc

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/quiver/input"
)

var keyTable = map[ebiten.Key]input.Key{
	ebiten.KeyA:            input.KeyA,
	ebiten.KeyB:            input.KeyB,
	ebiten.KeyC:            input.KeyC,
	ebiten.KeyD:            input.KeyD,
	ebiten.KeyE:            input.KeyE,
	ebiten.KeyF:            input.KeyF,
	ebiten.KeyG:            input.KeyG,
	ebiten.KeyH:            input.KeyH,
	ebiten.KeyI:            input.KeyI,
	ebiten.KeyJ:            input.KeyJ,
	ebiten.KeyK:            input.KeyK,
	ebiten.KeyL:            input.KeyL,
	ebiten.KeyM:            input.KeyM,
	ebiten.KeyN:            input.KeyN,
	ebiten.KeyO:            input.KeyO,
	ebiten.KeyP:            input.KeyP,
	ebiten.KeyQ:            input.KeyQ,
	ebiten.KeyR:            input.KeyR,
	ebiten.KeyS:            input.KeyS,
	ebiten.KeyT:            input.KeyT,
	ebiten.KeyU:            input.KeyU,
	ebiten.KeyV:            input.KeyV,
	ebiten.KeyW:            input.KeyW,
	ebiten.KeyX:            input.KeyX,
	ebiten.KeyY:            input.KeyY,
	ebiten.KeyZ:            input.KeyZ,
	ebiten.KeyDigit0:       input.KeyDigit0,
	ebiten.KeyDigit1:       input.KeyDigit1,
	ebiten.KeyDigit2:       input.KeyDigit2,
	ebiten.KeyDigit3:       input.KeyDigit3,
	ebiten.KeyDigit4:       input.KeyDigit4,
	ebiten.KeyDigit5:       input.KeyDigit5,
	ebiten.KeyDigit6:       input.KeyDigit6,
	ebiten.KeyDigit7:       input.KeyDigit7,
	ebiten.KeyDigit8:       input.KeyDigit8,
	ebiten.KeyDigit9:       input.KeyDigit9,
	ebiten.KeyF1:           input.KeyF1,
	ebiten.KeyF2:           input.KeyF2,
	ebiten.KeyF3:           input.KeyF3,
	ebiten.KeyF4:           input.KeyF4,
	ebiten.KeyF5:           input.KeyF5,
	ebiten.KeyF6:           input.KeyF6,
	ebiten.KeyF7:           input.KeyF7,
	ebiten.KeyF8:           input.KeyF8,
	ebiten.KeyF9:           input.KeyF9,
	ebiten.KeyF10:          input.KeyF10,
	ebiten.KeyF11:          input.KeyF11,
	ebiten.KeyF12:          input.KeyF12,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyInsert:       input.KeyInsert,
	ebiten.KeyDelete:       input.KeyDelete,
	ebiten.KeyHome:         input.KeyHome,
	ebiten.KeyEnd:          input.KeyEnd,
	ebiten.KeyPageUp:       input.KeyPageUp,
	ebiten.KeyPageDown:     input.KeyPageDown,
	ebiten.KeyArrowUp:      input.KeyArrowUp,
	ebiten.KeyArrowDown:    input.KeyArrowDown,
	ebiten.KeyArrowLeft:    input.KeyArrowLeft,
	ebiten.KeyArrowRight:   input.KeyArrowRight,
	ebiten.KeyShiftLeft:    input.KeyShiftLeft,
	ebiten.KeyShiftRight:   input.KeyShiftRight,
	ebiten.KeyControlLeft:  input.KeyControlLeft,
	ebiten.KeyControlRight: input.KeyControlRight,
	ebiten.KeyAltLeft:      input.KeyAltLeft,
	ebiten.KeyAltRight:     input.KeyAltRight,
	ebiten.KeyMetaLeft:     input.KeyMetaLeft,
	ebiten.KeyMetaRight:    input.KeyMetaRight,
	ebiten.KeyCapsLock:     input.KeyCapsLock,
	ebiten.KeyMinus:        input.KeyMinus,
	ebiten.KeyEqual:        input.KeyEqual,
	ebiten.KeyBracketLeft:  input.KeyBracketLeft,
	ebiten.KeyBracketRight: input.KeyBracketRight,
	ebiten.KeyBackslash:    input.KeyBackslash,
	ebiten.KeySemicolon:    input.KeySemicolon,
	ebiten.KeyQuote:        input.KeyQuote,
	ebiten.KeyComma:        input.KeyComma,
	ebiten.KeyPeriod:       input.KeyPeriod,
	ebiten.KeySlash:        input.KeySlash,
	ebiten.KeyBackquote:    input.KeyBackquote,
}

// TranslateKey maps an ebiten key onto the modeled key set.
func TranslateKey(k ebiten.Key) (input.Key, bool) {
	key, ok := keyTable[k]
	return key, ok
}
