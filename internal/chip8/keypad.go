package chip8

import "sync"

// Keypad tracks the pressed state of the 16 logical keys. Press and
// Release may be called from an input thread while the engine reads it;
// every read is a single-lock snapshot and never blocks on input.
type Keypad struct {
	mu      sync.Mutex
	pressed [KeyCount]bool
}

func (k *Keypad) Press(key Key) {
	if key >= KeyCount {
		return
	}
	k.mu.Lock()
	k.pressed[key] = true
	k.mu.Unlock()
}

func (k *Keypad) Release(key Key) {
	if key >= KeyCount {
		return
	}
	k.mu.Lock()
	k.pressed[key] = false
	k.mu.Unlock()
}

func (k *Keypad) Pressed(key Key) (bool, error) {
	if key >= KeyCount {
		return false, KeyError(key)
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pressed[key], nil
}

// FirstPressed scans keys 0-F in ascending order and returns the first
// pressed one.
func (k *Keypad) FirstPressed() (Key, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for i := range k.pressed {
		if k.pressed[i] {
			return Key(i), true
		}
	}
	return 0, false
}

func (k *Keypad) reset() {
	k.mu.Lock()
	k.pressed = [KeyCount]bool{}
	k.mu.Unlock()
}
