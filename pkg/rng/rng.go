package rng

import "math/rand/v2"

// Streams derives independent deterministic generators from a single base
// seed. Each stream is a PCG instance keyed by (seed, stream id), so the set
// of generators a run uses depends only on the configuration, never on the
// order in which workers pick up tasks.
type Streams struct {
	seed uint64
}

// NewStreams wraps the base seed for stream derivation.
func NewStreams(seed int64) Streams {
	return Streams{seed: uint64(seed)}
}

// Pair returns the generator for a parameter pair's sequential chain.
func (s Streams) Pair(pair int) *rand.Rand {
	return rand.New(rand.NewPCG(s.seed, streamID(pair, 0)))
}

// Point returns the generator for one temperature point of a pair. Point
// streams are disjoint from the pair stream, so cold-start runs stay
// reproducible even when temperature points execute out of order.
func (s Streams) Point(pair, point int) *rand.Rand {
	return rand.New(rand.NewPCG(s.seed, streamID(pair, point+1)))
}

func streamID(pair, point int) uint64 {
	return uint64(pair)<<32 | uint64(uint32(point))
}
