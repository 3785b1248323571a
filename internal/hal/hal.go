// Package hal adapts the virtual machine's host interface to SDL2: a
// window for the framebuffer, keyboard events for the keypad and an audio
// device for the tone.
package hal

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unsafe"

	"github.com/retroware/chip8/internal/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
)

var (
	ErrReboot = errors.New("reboot")
	ErrQuit   = errors.New("quit")
)

type HAL struct {
	window          *sdl.Window
	renderer        *sdl.Renderer
	texture         *sdl.Texture
	backBuffer      []uint32
	backBufferPitch int

	beeper *beeper

	frameDuration time.Duration
	frameStart    time.Time
}

func New(frameRate int) (*HAL, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("failed to init sdl: %w", err)
	}

	window, err := sdl.CreateWindow("CHIP-8", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, WindowWidth, WindowHeight, sdl.WINDOW_SHOWN|sdl.WINDOW_UTILITY)
	if err != nil {
		return nil, fmt.Errorf("failed to create sdl window: %w", err)
	}
	slog.Debug("hal: create window")
	window.Show()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("failed to create sdl renderer: %w", err)
	}
	err = renderer.SetLogicalSize(WindowWidth, WindowHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to resize sdl renderer: %w", err)
	}
	slog.Debug("hal: create renderer")

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, chip8.ScreenWidth, chip8.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create sdl texture: %w", err)
	}
	slog.Debug("hal: create texture")

	beeper, err := newBeeper()
	if err != nil {
		return nil, fmt.Errorf("failed to open sdl audio: %w", err)
	}
	slog.Debug("hal: open audio device")

	return &HAL{
		window:          window,
		renderer:        renderer,
		texture:         texture,
		backBuffer:      make([]uint32, chip8.ScreenWidth*chip8.ScreenHeight),
		backBufferPitch: int(chip8.ScreenWidth) * int(unsafe.Sizeof(uint32(0))),
		beeper:          beeper,
		frameDuration:   time.Second / time.Duration(frameRate),
		frameStart:      time.Now(),
	}, nil
}

func (hal *HAL) Shutdown() {
	hal.beeper.close()

	if err := hal.texture.Destroy(); err != nil {
		slog.Error("failed to destroy sdl texture", "err", err)
	}

	if err := hal.renderer.Destroy(); err != nil {
		slog.Error("failed to destroy sdl renderer", "err", err)
	}

	if err := hal.window.Destroy(); err != nil {
		slog.Error("failed to destroy sdl window", "err", err)
	}

	sdl.Quit()
}

// PollInput drains pending SDL events into the press/release callbacks.
// Window close and Escape request a quit, Backspace a reboot.
func (hal *HAL) PollInput(press, release func(chip8.Key)) error {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch e.GetType() {
		case sdl.QUIT:
			slog.Debug("hal: exit requested")
			return ErrQuit

		case sdl.KEYDOWN:
			ke := e.(*sdl.KeyboardEvent)
			switch ke.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				slog.Debug("hal: exit requested")
				return ErrQuit
			case sdl.SCANCODE_BACKSPACE:
				slog.Debug("hal: reboot requested")
				return ErrReboot
			}
			if key, ok := keyMap(ke); ok {
				press(key)
			}

		case sdl.KEYUP:
			if key, ok := keyMap(e.(*sdl.KeyboardEvent)); ok {
				release(key)
			}
		}
	}

	return nil
}

func keyMap(e *sdl.KeyboardEvent) (chip8.Key, bool) {
	// Physical                Logical
	// ================        =================
	// | 1 | 2 | 3 | 4 |       | 1 | 2 | 3 | C |
	// | q | w | e | r |       | 4 | 5 | 6 | D |
	// | a | s | d | f |  <=>  | 7 | 8 | 9 | E |
	// | z | x | c | v |       | A | 0 | B | F |
	// ================        =================

	switch e.Keysym.Scancode {
	case sdl.SCANCODE_X:
		return chip8.Key0, true
	case sdl.SCANCODE_1:
		return chip8.Key1, true
	case sdl.SCANCODE_2:
		return chip8.Key2, true
	case sdl.SCANCODE_3:
		return chip8.Key3, true
	case sdl.SCANCODE_Q:
		return chip8.Key4, true
	case sdl.SCANCODE_W:
		return chip8.Key5, true
	case sdl.SCANCODE_E:
		return chip8.Key6, true
	case sdl.SCANCODE_A:
		return chip8.Key7, true
	case sdl.SCANCODE_S:
		return chip8.Key8, true
	case sdl.SCANCODE_D:
		return chip8.Key9, true
	case sdl.SCANCODE_Z:
		return chip8.KeyA, true
	case sdl.SCANCODE_C:
		return chip8.KeyB, true
	case sdl.SCANCODE_4:
		return chip8.KeyC, true
	case sdl.SCANCODE_R:
		return chip8.KeyD, true
	case sdl.SCANCODE_F:
		return chip8.KeyE, true
	case sdl.SCANCODE_V:
		return chip8.KeyF, true
	default:
		return 0, false
	}
}

// Render blits the framebuffer snapshot into the streaming texture.
func (hal *HAL) Render(frame []bool) error {
	const (
		bgColor = uint32(0x000000)
		fgColor = uint32(0xbea700)
	)

	for i, on := range frame {
		color := bgColor
		if on {
			color = fgColor
		}
		hal.backBuffer[i] = color
	}

	backBufferPtr := unsafe.Pointer(&hal.backBuffer[0])
	if err := hal.texture.Update(nil, backBufferPtr, hal.backBufferPitch); err != nil {
		return fmt.Errorf("failed to update sdl texture: %w", err)
	}

	if err := hal.renderer.Clear(); err != nil {
		return fmt.Errorf("failed to clear sdl renderer: %w", err)
	}

	if err := hal.renderer.Copy(hal.texture, nil, nil); err != nil {
		return fmt.Errorf("failed to copy sdl texture to renderer: %w", err)
	}

	hal.renderer.Present()
	return nil
}

// SetTone starts or stops the beep.
func (hal *HAL) SetTone(on bool) error {
	return hal.beeper.setTone(on)
}

// NextFrame sleeps out the remainder of the current frame slice to hold
// the target frame rate.
func (hal *HAL) NextFrame() error {
	elapsed := time.Since(hal.frameStart)
	if elapsed < hal.frameDuration {
		time.Sleep(hal.frameDuration - elapsed)
	}
	hal.frameStart = time.Now()
	return nil
}
