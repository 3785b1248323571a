package dasm

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	rom := []byte{
		0x00, 0xE0, // cls
		0x12, 0x00, // jp $200
		0xA2, 0x10, // ld I, $210
		0xFF, 0xFF, // no such instruction
	}

	var sb strings.Builder
	assert.NoError(t, Disassemble(&sb, rom))

	want := strings.Join([]string{
		"0200  00E0  cls",
		"0202  1200  jp $200",
		"0204  A210  ld I, $210",
		"0206  FFFF  .db $FF, $FF",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestDisassembleTrailingByte(t *testing.T) {
	var sb strings.Builder
	assert.NoError(t, Disassemble(&sb, []byte{0x00, 0xE0, 0x80}))

	want := strings.Join([]string{
		"0200  00E0  cls",
		"0202  80    .db $80",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestDisassembleEmpty(t *testing.T) {
	var sb strings.Builder
	assert.NoError(t, Disassemble(&sb, nil))
	assert.Equal(t, "", sb.String())
}

func TestDecodeLines(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want string
	}{
		{"ret", 0x00EE, "ret"},
		{"call", 0x2345, "call $345"},
		{"se imm", 0x3142, "se V1, $42"},
		{"sne imm", 0x4142, "sne V1, $42"},
		{"se reg", 0x5120, "se V1, V2"},
		{"sne reg", 0x9120, "sne V1, V2"},
		{"ld imm", 0x6A42, "ld VA, $42"},
		{"add imm", 0x7B01, "add VB, $01"},
		{"ld reg", 0x8120, "ld V1, V2"},
		{"or", 0x8121, "or V1, V2"},
		{"and", 0x8122, "and V1, V2"},
		{"xor", 0x8123, "xor V1, V2"},
		{"add reg", 0x8124, "add V1, V2"},
		{"sub", 0x8125, "sub V1, V2"},
		{"shr", 0x8126, "shr V1"},
		{"subn", 0x8127, "subn V1, V2"},
		{"shl", 0x812E, "shl V1"},
		{"jp offset", 0xB300, "jp V0, $300"},
		{"rnd", 0xC40F, "rnd V4, $0F"},
		{"drw", 0xD125, "drw V1, V2, $5"},
		{"skp", 0xE19E, "skp V1"},
		{"sknp", 0xE2A1, "sknp V2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := decode(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestDecodeUnknown(t *testing.T) {
	tests := []struct {
		name string
		word uint16
	}{
		{"alu gap", 0x8128},
		{"key family gap", 0xE100},
		{"f family gap", 0xF1FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := decode(tt.word)
			assert.False(t, ok)
		})
	}
}
