package horoscope

import "hash/fnv"

// stream is a splitmix64 sequence. Every draw for a reading comes from one
// stream so the output depends only on the seed and the draw order.
type stream struct {
	state uint64
}

func newStream(parts ...string) *stream {
	h := fnv.New64a()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{'|'})
		}
		h.Write([]byte(p))
	}
	return &stream{state: h.Sum64()}
}

func (s *stream) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// intn returns a value in [0, n).
func (s *stream) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.next() % uint64(n))
}

// between returns a value in [lo, hi].
func (s *stream) between(lo, hi int) int {
	return lo + s.intn(hi-lo+1)
}
