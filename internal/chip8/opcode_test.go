package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		kind Kind
	}{
		{"cls", 0x00E0, Cls},
		{"rts", 0x00EE, Rts},
		{"jmp", 0x1234, Jmp},
		{"jsr", 0x2345, Jsr},
		{"skeq imm", 0x31AB, SkeqImm},
		{"skne imm", 0x42CD, SkneImm},
		{"skeq reg", 0x5120, SkeqReg},
		{"mov imm", 0x6A42, MovImm},
		{"add imm", 0x7B01, AddImm},
		{"mov reg", 0x8120, MovReg},
		{"or", 0x8121, Or},
		{"and", 0x8122, And},
		{"xor", 0x8123, Xor},
		{"add reg", 0x8124, AddReg},
		{"sub", 0x8125, Sub},
		{"shr", 0x8126, Shr},
		{"rsb", 0x8127, Rsb},
		{"shl", 0x812E, Shl},
		{"skne reg", 0x9120, SkneReg},
		{"mvi", 0xA210, Mvi},
		{"jmi", 0xB300, Jmi},
		{"rand", 0xC40F, Rand},
		{"sprite", 0xD125, Sprite},
		{"skpr", 0xE19E, Skpr},
		{"skup", 0xE2A1, Skup},
		{"gdelay", 0xF307, Gdelay},
		{"wait key", 0xF40A, WaitKey},
		{"sdelay", 0xF515, Sdelay},
		{"ssound", 0xF618, Ssound},
		{"adi", 0xF71E, Adi},
		{"font", 0xF829, Font},
		{"bcd", 0xF933, Bcd},
		{"str", 0xFA55, Str},
		{"ldr", 0xFB65, Ldr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.kind, op.Kind)
			assert.Equal(t, tt.word, op.Word)
		})
	}
}

func TestDecodeOperands(t *testing.T) {
	op, err := Decode(0xD12A)
	assert.NoError(t, err)

	assert.Equal(t, uint8(0x1), op.X)
	assert.Equal(t, uint8(0x2), op.Y)
	assert.Equal(t, uint8(0xA), op.N)
	assert.Equal(t, uint8(0x2A), op.NN)
	assert.Equal(t, uint16(0x12A), op.NNN)
}

func TestDecodeUnknown(t *testing.T) {
	tests := []struct {
		name string
		word uint16
	}{
		{"sys call", 0x0123},
		{"alu gap", 0x8128},
		{"alu gap high", 0x812F},
		{"key family gap", 0xE100},
		{"f family gap", 0xF1FF},
		{"all ones", 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.word)
			assert.Error(t, err)

			var opErr OpcodeError
			assert.True(t, errors.As(err, &opErr))
			assert.Equal(t, tt.word, opErr.Word())
		})
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00E0, "cls"},
		{0x00EE, "rts"},
		{0x1234, "jmp 0x0234"},
		{0x2345, "jsr 0x0345"},
		{0x31AB, "skeq v1, 171"},
		{0x5120, "skeq v1, v2"},
		{0x6A2A, "mov va, 42"},
		{0x8126, "shr v1"},
		{0xA210, "mvi 0x0210"},
		{0xD125, "sprite v1, v2, 5"},
		{0xF40A, "key v4"},
		{0xFA55, "str 10"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			op, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, op.String())
		})
	}
}
