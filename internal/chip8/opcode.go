package chip8

import "fmt"

// Kind identifies one of the machine's operations. The set is closed: the
// decoder maps every valid instruction word to exactly one Kind and fails
// with OpcodeError for everything else.
type Kind int

const (
	Cls     Kind = iota // 00E0 - clear screen
	Rts                 // 00EE - return from subroutine
	Jmp                 // 1NNN - jump to NNN
	Jsr                 // 2NNN - call subroutine at NNN
	SkeqImm             // 3XNN - skip next if VX == NN
	SkneImm             // 4XNN - skip next if VX != NN
	SkeqReg             // 5XY0 - skip next if VX == VY
	MovImm              // 6XNN - VX = NN
	AddImm              // 7XNN - VX += NN, no carry
	MovReg              // 8XY0 - VX = VY
	Or                  // 8XY1 - VX |= VY
	And                 // 8XY2 - VX &= VY
	Xor                 // 8XY3 - VX ^= VY
	AddReg              // 8XY4 - VX += VY, carry in VF
	Sub                 // 8XY5 - VX -= VY, borrow in VF
	Shr                 // 8XY6 - shift right, bit 0 in VF
	Rsb                 // 8XY7 - VX = VY - VX, borrow in VF
	Shl                 // 8XYE - shift left, bit 7 in VF
	SkneReg             // 9XY0 - skip next if VX != VY
	Mvi                 // ANNN - I = NNN
	Jmi                 // BNNN - jump to NNN plus offset register
	Rand                // CXNN - VX = random byte & NN
	Sprite              // DXYN - draw N-row sprite at (VX, VY)
	Skpr                // EX9E - skip next if key VX pressed
	Skup                // EXA1 - skip next if key VX not pressed
	Gdelay              // FX07 - VX = delay timer
	WaitKey             // FX0A - block until a key press, key in VX
	Sdelay              // FX15 - delay timer = VX
	Ssound              // FX18 - sound timer = VX
	Adi                 // FX1E - I += VX
	Font                // FX29 - I = glyph address for VX
	Bcd                 // FX33 - BCD of VX at I, I+1, I+2
	Str                 // FX55 - store V0..VX at I
	Ldr                 // FX65 - load V0..VX from I
)

// Opcode is a decoded instruction: its Kind plus the operand fields sliced
// out of the word. Fields an operation does not use are still populated.
type Opcode struct {
	Kind Kind

	X   uint8  // second nibble, register index
	Y   uint8  // third nibble, register index
	N   uint8  // bottom nibble
	NN  uint8  // bottom byte
	NNN uint16 // bottom 12 bits, address

	Word uint16
}

// Decode classifies a 16-bit instruction word. The top nibble selects the
// instruction family; the 0x0, 0x8, 0xE and 0xF families dispatch further
// on their low bits. Unknown combinations fail with OpcodeError.
func Decode(word uint16) (Opcode, error) {
	op := Opcode{
		X:    uint8(word >> 8 & 0x0F),
		Y:    uint8(word >> 4 & 0x0F),
		N:    uint8(word & 0x0F),
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
		Word: word,
	}

	switch word & 0xF000 {
	case 0x0000:
		switch word & 0x0FFF {
		case 0x0E0:
			op.Kind = Cls
		case 0x0EE:
			op.Kind = Rts
		default:
			return Opcode{}, OpcodeError(word)
		}

	case 0x1000:
		op.Kind = Jmp
	case 0x2000:
		op.Kind = Jsr
	case 0x3000:
		op.Kind = SkeqImm
	case 0x4000:
		op.Kind = SkneImm
	case 0x5000:
		op.Kind = SkeqReg
	case 0x6000:
		op.Kind = MovImm
	case 0x7000:
		op.Kind = AddImm

	case 0x8000:
		switch word & 0x000F {
		case 0x0:
			op.Kind = MovReg
		case 0x1:
			op.Kind = Or
		case 0x2:
			op.Kind = And
		case 0x3:
			op.Kind = Xor
		case 0x4:
			op.Kind = AddReg
		case 0x5:
			op.Kind = Sub
		case 0x6:
			op.Kind = Shr
		case 0x7:
			op.Kind = Rsb
		case 0xE:
			op.Kind = Shl
		default:
			return Opcode{}, OpcodeError(word)
		}

	case 0x9000:
		op.Kind = SkneReg
	case 0xA000:
		op.Kind = Mvi
	case 0xB000:
		op.Kind = Jmi
	case 0xC000:
		op.Kind = Rand
	case 0xD000:
		op.Kind = Sprite

	case 0xE000:
		switch word & 0x00FF {
		case 0x9E:
			op.Kind = Skpr
		case 0xA1:
			op.Kind = Skup
		default:
			return Opcode{}, OpcodeError(word)
		}

	case 0xF000:
		switch word & 0x00FF {
		case 0x07:
			op.Kind = Gdelay
		case 0x0A:
			op.Kind = WaitKey
		case 0x15:
			op.Kind = Sdelay
		case 0x18:
			op.Kind = Ssound
		case 0x1E:
			op.Kind = Adi
		case 0x29:
			op.Kind = Font
		case 0x33:
			op.Kind = Bcd
		case 0x55:
			op.Kind = Str
		case 0x65:
			op.Kind = Ldr
		default:
			return Opcode{}, OpcodeError(word)
		}
	}

	return op, nil
}

// String renders the instruction as a mnemonic for the debug trace.
func (op Opcode) String() string {
	switch op.Kind {
	case Cls:
		return "cls"
	case Rts:
		return "rts"
	case Jmp:
		return fmt.Sprintf("jmp 0x%04x", op.NNN)
	case Jsr:
		return fmt.Sprintf("jsr 0x%04x", op.NNN)
	case SkeqImm:
		return fmt.Sprintf("skeq v%x, %d", op.X, op.NN)
	case SkneImm:
		return fmt.Sprintf("skne v%x, %d", op.X, op.NN)
	case SkeqReg:
		return fmt.Sprintf("skeq v%x, v%x", op.X, op.Y)
	case MovImm:
		return fmt.Sprintf("mov v%x, %d", op.X, op.NN)
	case AddImm:
		return fmt.Sprintf("add v%x, %d", op.X, op.NN)
	case MovReg:
		return fmt.Sprintf("mov v%x, v%x", op.X, op.Y)
	case Or:
		return fmt.Sprintf("or v%x, v%x", op.X, op.Y)
	case And:
		return fmt.Sprintf("and v%x, v%x", op.X, op.Y)
	case Xor:
		return fmt.Sprintf("xor v%x, v%x", op.X, op.Y)
	case AddReg:
		return fmt.Sprintf("add v%x, v%x", op.X, op.Y)
	case Sub:
		return fmt.Sprintf("sub v%x, v%x", op.X, op.Y)
	case Shr:
		return fmt.Sprintf("shr v%x", op.X)
	case Rsb:
		return fmt.Sprintf("rsb v%x, v%x", op.X, op.Y)
	case Shl:
		return fmt.Sprintf("shl v%x", op.X)
	case SkneReg:
		return fmt.Sprintf("skne v%x, v%x", op.X, op.Y)
	case Mvi:
		return fmt.Sprintf("mvi 0x%04x", op.NNN)
	case Jmi:
		return fmt.Sprintf("jmi 0x%04x", op.NNN)
	case Rand:
		return fmt.Sprintf("rand v%x, %d", op.X, op.NN)
	case Sprite:
		return fmt.Sprintf("sprite v%x, v%x, %d", op.X, op.Y, op.N)
	case Skpr:
		return fmt.Sprintf("skpr v%x", op.X)
	case Skup:
		return fmt.Sprintf("skup v%x", op.X)
	case Gdelay:
		return fmt.Sprintf("gdelay v%x", op.X)
	case WaitKey:
		return fmt.Sprintf("key v%x", op.X)
	case Sdelay:
		return fmt.Sprintf("sdelay v%x", op.X)
	case Ssound:
		return fmt.Sprintf("ssound v%x", op.X)
	case Adi:
		return fmt.Sprintf("adi v%x", op.X)
	case Font:
		return fmt.Sprintf("font v%x", op.X)
	case Bcd:
		return fmt.Sprintf("bcd v%x", op.X)
	case Str:
		return fmt.Sprintf("str %d", op.X)
	case Ldr:
		return fmt.Sprintf("ldr %d", op.X)
	default:
		return fmt.Sprintf("unknown 0x%04X", op.Word)
	}
}
