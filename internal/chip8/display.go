package chip8

// Display is the 64x32 monochrome framebuffer, row-major. Pixels are only
// ever toggled by XOR against sprite bits, never set unconditionally.
type Display struct {
	pixels [ScreenWidth * ScreenHeight]bool
}

func (d *Display) Clear() {
	d.pixels = [ScreenWidth * ScreenHeight]bool{}
}

func (d *Display) Pixel(x, y int) bool {
	return d.pixels[y*ScreenWidth+x]
}

// Draw XOR-blits an 8-bit-wide sprite at (x, y) and reports whether any
// pixel flipped from set to unset. The origin is taken modulo the screen
// size; pixels of the sprite body that fall off-screen are skipped unless
// wrap is set, in which case they wrap around. Collision is accumulated
// over the whole sprite, not short-circuited.
func (d *Display) Draw(sprite []uint8, x, y uint8, wrap bool) bool {
	originX := int(x) % ScreenWidth
	originY := int(y) % ScreenHeight

	collision := false
	for row, bits := range sprite {
		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}

			px := originX + bit
			py := originY + row
			if wrap {
				px %= ScreenWidth
				py %= ScreenHeight
			} else if px >= ScreenWidth || py >= ScreenHeight {
				continue
			}

			i := py*ScreenWidth + px
			if d.pixels[i] {
				collision = true
			}
			d.pixels[i] = !d.pixels[i]
		}
	}
	return collision
}

// Snapshot returns a copy of the framebuffer for the renderer. The
// renderer has no write access to the live buffer.
func (d *Display) Snapshot() []bool {
	frame := make([]bool, len(d.pixels))
	copy(frame, d.pixels[:])
	return frame
}
