package engine

import "math/rand/v2"

// NewRand returns the seeded placement source. Equal seeds yield equal mirror sequences.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
