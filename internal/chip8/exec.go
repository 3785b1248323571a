package chip8

// execute applies one decoded instruction to the machine state. Every
// operation either fully applies its effects or fails before mutating
// shared state; the one exception is WaitKey, which only rewinds the
// program counter while no key is down.
func (m *VM) execute(op Opcode) error {
	switch op.Kind {
	case Cls:
		m.display.Clear()
		return nil

	case Rts:
		addr, err := m.stack.Pop()
		if err != nil {
			return err
		}
		m.pc = addr
		return nil

	case Jmp:
		m.pc = op.NNN
		return nil

	case Jsr:
		m.stack.Push(m.pc)
		m.pc = op.NNN
		return nil

	case SkeqImm, SkneImm, SkeqReg, SkneReg:
		return m.execSkip(op)

	case MovImm:
		return m.registers.Write(op.X, op.NN)

	case AddImm:
		vx, err := m.registers.Read(op.X)
		if err != nil {
			return err
		}
		// Wraps on overflow; VF is untouched.
		return m.registers.Write(op.X, vx+op.NN)

	case MovReg, Or, And, Xor, AddReg, Sub, Rsb:
		return m.execALU(op)

	case Shr, Shl:
		return m.execShift(op)

	case Mvi:
		m.index = op.NNN
		return nil

	case Jmi:
		return m.execJumpOffset(op)

	case Rand:
		return m.registers.Write(op.X, m.randByte()&op.NN)

	case Sprite:
		return m.execDraw(op)

	case Skpr, Skup:
		return m.execKeySkip(op)

	case Gdelay:
		return m.registers.Write(op.X, m.delay.Value())

	case WaitKey:
		return m.execWaitKey(op)

	case Sdelay:
		vx, err := m.registers.Read(op.X)
		if err != nil {
			return err
		}
		m.delay.Set(vx)
		return nil

	case Ssound:
		vx, err := m.registers.Read(op.X)
		if err != nil {
			return err
		}
		m.sound.Set(vx)
		return nil

	case Adi:
		return m.execAddIndex(op)

	case Font:
		vx, err := m.registers.Read(op.X)
		if err != nil {
			return err
		}
		m.index = FontAddr + uint16(vx&0x0F)*FontHeight
		return nil

	case Bcd:
		return m.execBCD(op)

	case Str:
		return m.execStore(op)

	case Ldr:
		return m.execLoad(op)
	}

	return OpcodeError(op.Word)
}

func (m *VM) execSkip(op Opcode) error {
	vx, err := m.registers.Read(op.X)
	if err != nil {
		return err
	}

	var skip bool
	switch op.Kind {
	case SkeqImm:
		skip = vx == op.NN
	case SkneImm:
		skip = vx != op.NN
	case SkeqReg, SkneReg:
		vy, err := m.registers.Read(op.Y)
		if err != nil {
			return err
		}
		skip = (vx == vy) == (op.Kind == SkeqReg)
	}

	if skip {
		m.pc += InstructionSize
	}
	return nil
}

func (m *VM) execALU(op Opcode) error {
	vx, err := m.registers.Read(op.X)
	if err != nil {
		return err
	}
	vy, err := m.registers.Read(op.Y)
	if err != nil {
		return err
	}

	switch op.Kind {
	case MovReg:
		return m.registers.Write(op.X, vy)

	case Or, And, Xor:
		var result uint8
		switch op.Kind {
		case Or:
			result = vx | vy
		case And:
			result = vx & vy
		case Xor:
			result = vx ^ vy
		}
		if err := m.registers.Write(op.X, result); err != nil {
			return err
		}
		// The logic ops clear VF as a side effect.
		return m.registers.Write(VF, 0)

	case AddReg:
		sum := vx + vy
		if err := m.registers.Write(op.X, sum); err != nil {
			return err
		}
		// Carry: the wrapped sum is numerically below the first addend.
		flag := uint8(0)
		if sum < vx {
			flag = 1
		}
		return m.registers.Write(VF, flag)

	case Sub:
		return m.execSubtract(op.X, vx, vy)

	case Rsb:
		return m.execSubtract(op.X, vy, vx)
	}

	return OpcodeError(op.Word)
}

// execSubtract stores minuend-subtrahend into the destination register and
// sets VF to 1 when no borrow was needed.
func (m *VM) execSubtract(dst, minuend, subtrahend uint8) error {
	if err := m.registers.Write(dst, minuend-subtrahend); err != nil {
		return err
	}
	flag := uint8(0)
	if minuend >= subtrahend {
		flag = 1
	}
	return m.registers.Write(VF, flag)
}

func (m *VM) execShift(op Opcode) error {
	src := op.Y
	if m.cfg.Quirks.ShiftSourceVX {
		src = op.X
	}
	v, err := m.registers.Read(src)
	if err != nil {
		return err
	}

	var result, out uint8
	if op.Kind == Shr {
		result, out = v>>1, v&0x01
	} else {
		result, out = v<<1, v>>7
	}

	if err := m.registers.Write(op.X, result); err != nil {
		return err
	}
	return m.registers.Write(VF, out)
}

func (m *VM) execJumpOffset(op Opcode) error {
	offsetReg := uint8(0)
	if m.cfg.Quirks.JumpOffsetVX {
		offsetReg = op.X
	}
	v, err := m.registers.Read(offsetReg)
	if err != nil {
		return err
	}
	m.pc = op.NNN + uint16(v)
	return nil
}

func (m *VM) execDraw(op Opcode) error {
	vx, err := m.registers.Read(op.X)
	if err != nil {
		return err
	}
	vy, err := m.registers.Read(op.Y)
	if err != nil {
		return err
	}

	// Fetch all sprite rows before touching the framebuffer so an
	// out-of-bounds sprite fails without a partial draw.
	sprite, err := m.memory.ReadSpan(m.index, uint16(op.N))
	if err != nil {
		return err
	}

	flag := uint8(0)
	if m.display.Draw(sprite, vx, vy, m.cfg.Quirks.WrapSprites) {
		flag = 1
	}
	return m.registers.Write(VF, flag)
}

func (m *VM) execKeySkip(op Opcode) error {
	vx, err := m.registers.Read(op.X)
	if err != nil {
		return err
	}
	pressed, err := m.keypad.Pressed(Key(vx))
	if err != nil {
		return err
	}

	if pressed == (op.Kind == Skpr) {
		m.pc += InstructionSize
	}
	return nil
}

// execWaitKey implements the blocking key read. With no key down it
// rewinds the program counter so the same instruction refetches next
// cycle; the frame loop keeps running, making this a per-frame busy wait
// rather than a suspension. A hit stores the key and releases it so a
// held key is read only once.
func (m *VM) execWaitKey(op Opcode) error {
	key, ok := m.keypad.FirstPressed()
	if !ok {
		m.pc -= InstructionSize
		return nil
	}

	if err := m.registers.Write(op.X, uint8(key)); err != nil {
		return err
	}
	m.keypad.Release(key)
	return nil
}

func (m *VM) execAddIndex(op Opcode) error {
	vx, err := m.registers.Read(op.X)
	if err != nil {
		return err
	}

	flag := uint8(0)
	if m.index+uint16(vx) > 0x0FFF {
		flag = 1
	}
	m.index += uint16(vx)
	return m.registers.Write(VF, flag)
}

func (m *VM) execBCD(op Opcode) error {
	vx, err := m.registers.Read(op.X)
	if err != nil {
		return err
	}

	if uint32(m.index)+2 >= MemorySize {
		return AddressError(m.index + 2)
	}

	digits := [3]uint8{vx / 100, (vx / 10) % 10, vx % 10}
	for i, digit := range digits {
		if err := m.memory.WriteByte(m.index+uint16(i), digit); err != nil {
			return err
		}
	}
	return nil
}

func (m *VM) execStore(op Opcode) error {
	if uint32(m.index)+uint32(op.X) >= MemorySize {
		return AddressError(m.index + uint16(op.X))
	}

	for i := uint8(0); i <= op.X; i++ {
		v, err := m.registers.Read(i)
		if err != nil {
			return err
		}
		if err := m.memory.WriteByte(m.index+uint16(i), v); err != nil {
			return err
		}
	}

	if !m.cfg.Quirks.KeepIndex {
		m.index += uint16(op.X) + 1
	}
	return nil
}

func (m *VM) execLoad(op Opcode) error {
	if uint32(m.index)+uint32(op.X) >= MemorySize {
		return AddressError(m.index + uint16(op.X))
	}

	for i := uint8(0); i <= op.X; i++ {
		v, err := m.memory.ReadByte(m.index + uint16(i))
		if err != nil {
			return err
		}
		if err := m.registers.Write(i, v); err != nil {
			return err
		}
	}

	if !m.cfg.Quirks.KeepIndex {
		m.index += uint16(op.X) + 1
	}
	return nil
}
