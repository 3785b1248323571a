package chip8

// Memory is the 4k byte-addressable memory. The font table lives at
// FontAddr, programs at ProgramStart onwards. All accesses are bounds
// checked; an address outside [0, MemorySize) fails with AddressError
// instead of wrapping.
type Memory struct {
	data [MemorySize]uint8
}

// NewMemory returns zeroed memory with the font table preloaded.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.data[FontAddr:], fontData[:])
	return m
}

func (m *Memory) ReadByte(addr uint16) (uint8, error) {
	if addr >= MemorySize {
		return 0, AddressError(addr)
	}
	return m.data[addr], nil
}

func (m *Memory) WriteByte(addr uint16, v uint8) error {
	if addr >= MemorySize {
		return AddressError(addr)
	}
	m.data[addr] = v
	return nil
}

// ReadSpan returns a copy of n consecutive bytes starting at addr.
// Used by the draw instruction to fetch sprite rows.
func (m *Memory) ReadSpan(addr, n uint16) ([]uint8, error) {
	end := uint32(addr) + uint32(n)
	if end > MemorySize {
		return nil, AddressError(addr + n - 1)
	}
	span := make([]uint8, n)
	copy(span, m.data[addr:end])
	return span, nil
}

// LoadProgram copies a program image to ProgramStart. The font table is
// never touched.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > MemorySize-int(ProgramStart) {
		return ErrProgramTooLarge
	}
	copy(m.data[ProgramStart:], program)
	return nil
}
