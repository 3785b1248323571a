package chip8

// Timer is an 8-bit countdown value. The frame loop ticks it once per
// frame; it saturates at zero instead of underflowing.
type Timer uint8

func (t *Timer) Set(v uint8) {
	*t = Timer(v)
}

func (t Timer) Value() uint8 {
	return uint8(t)
}

func (t *Timer) Tick() {
	if *t > 0 {
		*t--
	}
}
