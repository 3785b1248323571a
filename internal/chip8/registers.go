package chip8

// Registers is the bank of sixteen general-purpose 8-bit registers V0-VF.
type Registers struct {
	v [RegisterCount]uint8
}

func (r *Registers) Read(i uint8) (uint8, error) {
	if i >= RegisterCount {
		return 0, RegisterError(i)
	}
	return r.v[i], nil
}

func (r *Registers) Write(i, value uint8) error {
	if i >= RegisterCount {
		return RegisterError(i)
	}
	r.v[i] = value
	return nil
}

func (r *Registers) reset() {
	r.v = [RegisterCount]uint8{}
}
