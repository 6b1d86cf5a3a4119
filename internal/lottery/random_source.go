package lottery

import "math/rand/v2"

// RandomSource yields uniformly distributed integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// RandomSourceProvider builds a fresh RandomSource for a generation request.
type RandomSourceProvider func() RandomSource

// NewSystemRandomSource returns a runtime-seeded source. Runs are not reproducible.
func NewSystemRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
