// Package dasm renders a CHIP-8 ROM image as an assembly listing. Words
// are matched against the instruction set's mask/value tables; anything
// that matches no instruction is listed as data bytes.
package dasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// programStart is the memory address ROM offset 0 maps to.
const programStart = 0x200

// Disassemble writes one line per instruction word of rom to w, addressed
// as the words would appear in memory.
func Disassemble(w io.Writer, rom []byte) error {
	for offset := 0; offset < len(rom); offset += 2 {
		addr := programStart + offset

		if offset+1 >= len(rom) {
			// Trailing odd byte.
			_, err := fmt.Fprintf(w, "%04X  %02X    .db $%02X\n", addr, rom[offset], rom[offset])
			return err
		}

		word := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		line, ok := decode(word)
		if !ok {
			line = fmt.Sprintf(".db $%02X, $%02X", rom[offset], rom[offset+1])
		}

		if _, err := fmt.Fprintf(w, "%04X  %04X  %s\n", addr, word, line); err != nil {
			return err
		}
	}
	return nil
}

// decode matches a word against the opcode tables of its first nibble.
func decode(word uint16) (string, bool) {
	for _, op := range chip8.Opcodes[int(word>>12)] {
		if word&op.Info.Mask != op.Info.Value {
			continue
		}
		if op.Instruction == nil {
			break
		}

		name := op.Instruction.Name
		if params := formatParams(name, word); params != "" {
			return name + " " + params, true
		}
		return name, true
	}
	return "", false
}

// formatParams renders the operand list for an instruction. Instructions
// whose operands are implied by the mnemonic return "".
func formatParams(name string, opcode uint16) string {
	x := opcode >> 8 & 0x0F
	y := opcode >> 4 & 0x0F

	switch name {
	case chip8.JpInst.Name:
		if opcode&0xF000 == 0xB000 {
			return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
		}
		return fmt.Sprintf("$%03X", opcode&0x0FFF)

	case chip8.CallInst.Name:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)

	case chip8.SeInst.Name, chip8.SneInst.Name:
		if opcode&0xF000 == 0x5000 || opcode&0xF000 == 0x9000 {
			return fmt.Sprintf("V%X, V%X", x, y)
		}
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)

	case chip8.LdInst.Name:
		switch opcode & 0xF000 {
		case 0x6000:
			return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
		case 0x8000:
			return fmt.Sprintf("V%X, V%X", x, y)
		case 0xA000:
			return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
		}
		return ""

	case chip8.AddInst.Name:
		switch opcode & 0xF000 {
		case 0x7000:
			return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
		case 0x8000:
			return fmt.Sprintf("V%X, V%X", x, y)
		}
		return ""

	case chip8.OrInst.Name, chip8.AndInst.Name, chip8.XorInst.Name, chip8.SubInst.Name, chip8.SubnInst.Name:
		return fmt.Sprintf("V%X, V%X", x, y)

	case chip8.ShrInst.Name, chip8.ShlInst.Name, chip8.SkpInst.Name, chip8.SknpInst.Name:
		return fmt.Sprintf("V%X", x)

	case chip8.RndInst.Name:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)

	case chip8.DrwInst.Name:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, opcode&0x000F)
	}

	return ""
}
