package chip8

// Stack holds subroutine return addresses, last-in-first-out. It grows as
// needed; only popping an empty stack is an error.
type Stack struct {
	addrs []uint16
}

func (s *Stack) Push(addr uint16) {
	s.addrs = append(s.addrs, addr)
}

func (s *Stack) Pop() (uint16, error) {
	if len(s.addrs) == 0 {
		return 0, ErrStackUnderflow
	}
	addr := s.addrs[len(s.addrs)-1]
	s.addrs = s.addrs[:len(s.addrs)-1]
	return addr, nil
}

func (s *Stack) Depth() int {
	return len(s.addrs)
}

func (s *Stack) reset() {
	s.addrs = s.addrs[:0]
}
