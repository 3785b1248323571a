package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.WriteByte(0x200, 0xAB))
	v, err := m.ReadByte(0x200)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xAB), v)
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory()

	_, err := m.ReadByte(MemorySize)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "memory address out of range")

	err = m.WriteByte(0xFFFF, 1)
	var addrErr AddressError
	assert.True(t, errors.As(err, &addrErr))
	assert.Equal(t, uint16(0xFFFF), uint16(addrErr))

	v, err := m.ReadByte(MemorySize - 1)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), v)
}

func TestMemoryReadSpan(t *testing.T) {
	m := NewMemory()
	for i := uint16(0); i < 4; i++ {
		assert.NoError(t, m.WriteByte(0x300+i, uint8(i)+1))
	}

	span, err := m.ReadSpan(0x300, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, len(span))
	for i, v := range span {
		assert.Equal(t, uint8(i)+1, v)
	}

	_, err = m.ReadSpan(MemorySize-2, 3)
	assert.Error(t, err)

	// The copy must not alias the live memory.
	span[0] = 0xFF
	v, err := m.ReadByte(0x300)
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), v)
}

func TestMemoryFontPreloaded(t *testing.T) {
	m := NewMemory()

	for i, want := range fontData {
		v, err := m.ReadByte(FontAddr + uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestMemoryLoadProgram(t *testing.T) {
	m := NewMemory()

	program := []byte{0x12, 0x34, 0x56}
	assert.NoError(t, m.LoadProgram(program))
	for i, want := range program {
		v, err := m.ReadByte(ProgramStart + uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, want, v)
	}

	// A maximal program fits exactly.
	assert.NoError(t, m.LoadProgram(make([]byte, MemorySize-int(ProgramStart))))

	err := m.LoadProgram(make([]byte, MemorySize-int(ProgramStart)+1))
	assert.True(t, errors.Is(err, ErrProgramTooLarge))

	// The font table survives loading.
	v, err := m.ReadByte(FontAddr)
	assert.NoError(t, err)
	assert.Equal(t, fontData[0], v)
}
