package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned by a subroutine return with no call on
	// the stack.
	ErrStackUnderflow = errors.New("call stack underflow")

	// ErrProgramTooLarge is returned when a program does not fit between
	// ProgramStart and the end of memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// AddressError reports a memory access outside [0, MemorySize).
type AddressError uint16

func (e AddressError) Error() string {
	return fmt.Sprintf("memory address out of range: 0x%04x", uint16(e))
}

// OpcodeError reports an instruction word the decoder cannot classify.
// It carries the raw 16-bit word for diagnostics.
type OpcodeError uint16

func (e OpcodeError) Error() string {
	return fmt.Sprintf("unknown op code 0x%04X", uint16(e))
}

// Word returns the undecodable instruction word.
func (e OpcodeError) Word() uint16 { return uint16(e) }

// RegisterError reports a register index outside 0-15. The instruction
// format guarantees 4-bit indices, so this is a defensive check only.
type RegisterError uint8

func (e RegisterError) Error() string {
	return fmt.Sprintf("invalid register index: %d", uint8(e))
}

// KeyError reports a key index outside 0-15.
type KeyError uint8

func (e KeyError) Error() string {
	return fmt.Sprintf("invalid key index: %d", uint8(e))
}
