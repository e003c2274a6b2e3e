package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/event"
)

var keymap = map[ebiten.Key]event.Key{
	ebiten.KeyEscape:     event.KeyEscape,
	ebiten.KeySpace:      event.KeySpace,
	ebiten.KeyEnter:      event.KeyEnter,
	ebiten.KeyTab:        event.KeyTab,
	ebiten.KeyBackspace:  event.KeyBackspace,
	ebiten.KeyArrowUp:    event.KeyArrowUp,
	ebiten.KeyArrowDown:  event.KeyArrowDown,
	ebiten.KeyArrowLeft:  event.KeyArrowLeft,
	ebiten.KeyArrowRight: event.KeyArrowRight,
	ebiten.KeyA:          event.KeyA,
	ebiten.KeyB:          event.KeyB,
	ebiten.KeyC:          event.KeyC,
	ebiten.KeyD:          event.KeyD,
	ebiten.KeyE:          event.KeyE,
	ebiten.KeyF:          event.KeyF,
	ebiten.KeyG:          event.KeyG,
	ebiten.KeyH:          event.KeyH,
	ebiten.KeyI:          event.KeyI,
	ebiten.KeyJ:          event.KeyJ,
	ebiten.KeyK:          event.KeyK,
	ebiten.KeyL:          event.KeyL,
	ebiten.KeyM:          event.KeyM,
	ebiten.KeyN:          event.KeyN,
	ebiten.KeyO:          event.KeyO,
	ebiten.KeyP:          event.KeyP,
	ebiten.KeyQ:          event.KeyQ,
	ebiten.KeyR:          event.KeyR,
	ebiten.KeyS:          event.KeyS,
	ebiten.KeyT:          event.KeyT,
	ebiten.KeyU:          event.KeyU,
	ebiten.KeyV:          event.KeyV,
	ebiten.KeyW:          event.KeyW,
	ebiten.KeyX:          event.KeyX,
	ebiten.KeyY:          event.KeyY,
	ebiten.KeyZ:          event.KeyZ,
	ebiten.KeyDigit0:     event.Key0,
	ebiten.KeyDigit1:     event.Key1,
	ebiten.KeyDigit2:     event.Key2,
	ebiten.KeyDigit3:     event.Key3,
	ebiten.KeyDigit4:     event.Key4,
	ebiten.KeyDigit5:     event.Key5,
	ebiten.KeyDigit6:     event.Key6,
	ebiten.KeyDigit7:     event.Key7,
	ebiten.KeyDigit8:     event.Key8,
	ebiten.KeyDigit9:     event.Key9,
}

// translateKey maps an Ebitengine key code. Keys without an equivalent
// become event.KeyUnknown so they still reach the loop as ignored presses.
func translateKey(k ebiten.Key) event.Key {
	if key, ok := keymap[k]; ok {
		return key
	}
	return event.KeyUnknown
}
