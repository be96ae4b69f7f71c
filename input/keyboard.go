package input

// Keyboard holds one ButtonState per modeled Key.
type Keyboard struct {
	keys [KeyCount]ButtonState
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// ProcessKey applies a raw key event. Keys outside the modeled set are
// ignored.
func (k *Keyboard) ProcessKey(state ElementState, key Key) {
	if key >= KeyCount {
		return
	}
	k.keys[key] = k.keys[key].Apply(state)
}

// ClearTemporaryStates collapses every key.
func (k *Keyboard) ClearTemporaryStates() {
	for i := range k.keys {
		k.keys[i] = k.keys[i].ClearTemporary()
	}
}

func (k *Keyboard) Key(key Key) ButtonState {
	if key >= KeyCount {
		return NotPressed
	}
	return k.keys[key]
}

// AppendActive appends every key whose state is not NotPressed.
func (k *Keyboard) AppendActive(dst []Key) []Key {
	for i, s := range k.keys {
		if s != NotPressed {
			dst = append(dst, Key(i))
		}
	}
	return dst
}
