package chip8

const (
	DefaultFrameRate = 60
	DefaultIPS       = 700
)

// Quirks selects between historically divergent behaviors of the same
// opcodes. Different CHIP-8 lineages disagree on these; the zero value
// picks one documented default per toggle rather than guessing.
type Quirks struct {
	// ShiftSourceVX makes 8XY6/8XYE shift VX in place instead of reading
	// VY.
	ShiftSourceVX bool

	// KeepIndex stops FX55/FX65 from advancing the index register by X+1
	// after the block copy.
	KeepIndex bool

	// JumpOffsetVX makes BNNN add VX instead of V0 to the jump target.
	JumpOffsetVX bool

	// WrapSprites wraps sprite body pixels around the screen edges instead
	// of clipping them.
	WrapSprites bool
}

// Config carries the machine's timing rates and quirk selection.
type Config struct {
	// FrameRate is the frame loop cadence in frames per second. Timers
	// tick once per frame.
	FrameRate int

	// IPS is the instruction execution rate in instructions per second.
	IPS int

	Quirks Quirks
}

func (c Config) withDefaults() Config {
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.IPS <= 0 {
		c.IPS = DefaultIPS
	}
	return c
}

// InstructionsPerFrame is the per-frame execution budget.
func (c Config) InstructionsPerFrame() int {
	return c.IPS / c.FrameRate
}
