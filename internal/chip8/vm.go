package chip8

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Host is the set of I/O collaborators the frame loop drives: input
// polling, framebuffer rendering, tone output and frame pacing. The VM
// never sees raw host key codes, only the abstract 16-key state fed
// through the press/release callbacks.
type Host interface {
	PollInput(press, release func(Key)) error
	Render(frame []bool) error
	SetTone(on bool) error
	NextFrame() error
}

// VM is the execution engine. It owns all machine state and advances it
// exclusively through instruction execution and the per-frame timer tick.
// Fatal failures (out-of-bounds access, stack underflow, unknown opcode)
// end the session; the VM never recovers or retries.
type VM struct {
	memory    *Memory
	registers Registers
	stack     Stack
	display   Display
	keypad    Keypad

	pc    uint16
	index uint16

	delay Timer
	sound Timer

	cfg     Config
	program []byte

	randByte func() uint8
}

func New(cfg Config) *VM {
	return &VM{
		memory: NewMemory(),
		pc:     ProgramStart,
		cfg:    cfg.withDefaults(),
		randByte: func() uint8 {
			return uint8(rand.IntN(256))
		},
	}
}

// LoadProgram copies a program image into memory at ProgramStart and keeps
// it for later resets.
func (m *VM) LoadProgram(program []byte) error {
	if err := m.memory.LoadProgram(program); err != nil {
		return err
	}
	m.program = program

	slog.Info("load program",
		"at", fmt.Sprintf("0x%04x", ProgramStart),
		"n", len(program),
	)
	return nil
}

// Reset returns the machine to its power-on state and reloads the program.
func (m *VM) Reset() {
	m.memory = NewMemory()
	m.registers.reset()
	m.stack.reset()
	m.display.Clear()
	m.keypad.reset()

	m.pc = ProgramStart
	m.index = 0
	m.delay.Set(0)
	m.sound.Set(0)

	if m.program != nil {
		// Cannot fail: the program fit when it was first loaded.
		_ = m.memory.LoadProgram(m.program)
	}
}

// Step runs one fetch-decode-execute cycle.
func (m *VM) Step() error {
	at := m.pc

	word, err := m.fetch()
	if err != nil {
		return err
	}

	op, err := Decode(word)
	if err != nil {
		return err
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug(
			"exec",
			"pc", fmt.Sprintf("0x%04x", at),
			"opcode", fmt.Sprintf("0x%04x", word),
			"instr", op.String(),
		)
	}

	return m.execute(op)
}

// fetch reads the big-endian instruction word at the program counter and
// advances the counter past it.
func (m *VM) fetch() (uint16, error) {
	hi, err := m.memory.ReadByte(m.pc)
	if err != nil {
		return 0, err
	}
	lo, err := m.memory.ReadByte(m.pc + 1)
	if err != nil {
		return 0, err
	}

	m.pc += InstructionSize
	return uint16(hi)<<8 | uint16(lo), nil
}

// RunFrame executes one frame: tick both timers, then run the per-frame
// instruction budget. Timers are decremented here and nowhere else.
func (m *VM) RunFrame() error {
	m.delay.Tick()
	m.sound.Tick()

	for i := 0; i < m.cfg.InstructionsPerFrame(); i++ {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// SoundActive reports whether the host should play the tone.
func (m *VM) SoundActive() bool {
	return m.sound.Value() > 0
}

// Run drives the machine against a host at the configured frame rate
// until the host signals a stop or execution fails. The host's input
// events land in the keypad through the press/release callbacks; the
// host receives a framebuffer snapshot and the tone state once per frame.
func (m *VM) Run(host Host) error {
	for {
		if err := host.PollInput(m.keypad.Press, m.keypad.Release); err != nil {
			return err
		}

		if err := m.RunFrame(); err != nil {
			return err
		}

		if err := host.Render(m.display.Snapshot()); err != nil {
			return err
		}

		if err := host.SetTone(m.SoundActive()); err != nil {
			return err
		}

		if err := host.NextFrame(); err != nil {
			return err
		}
	}
}
