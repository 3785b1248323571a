package chip8

import (
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypadPressRelease(t *testing.T) {
	var k Keypad

	pressed, err := k.Pressed(Key5)
	assert.NoError(t, err)
	assert.False(t, pressed)

	k.Press(Key5)
	pressed, err = k.Pressed(Key5)
	assert.NoError(t, err)
	assert.True(t, pressed)

	k.Release(Key5)
	pressed, err = k.Pressed(Key5)
	assert.NoError(t, err)
	assert.False(t, pressed)
}

func TestKeypadInvalidKey(t *testing.T) {
	var k Keypad

	_, err := k.Pressed(Key(16))
	assert.Error(t, err)

	// Out-of-range presses are dropped, not stored.
	k.Press(Key(200))
	k.Release(Key(200))
}

func TestKeypadFirstPressed(t *testing.T) {
	var k Keypad

	_, ok := k.FirstPressed()
	assert.False(t, ok)

	k.Press(KeyC)
	k.Press(Key3)

	key, ok := k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, Key3, key)
}

func TestKeypadConcurrentAccess(t *testing.T) {
	var k Keypad

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(key Key) {
			defer wg.Done()
			for n := 0; n < 1000; n++ {
				k.Press(key)
				_, _ = k.Pressed(key)
				_, _ = k.FirstPressed()
				k.Release(key)
			}
		}(Key(i))
	}
	wg.Wait()

	_, ok := k.FirstPressed()
	assert.False(t, ok)
}
