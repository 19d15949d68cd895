package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewStreams(42).Pair(3)
	b := NewStreams(42).Pair(3)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64(), "draw %d diverged", i)
	}
}

func TestStreamsAreIndependent(t *testing.T) {
	base := NewStreams(42)

	first := make([]uint64, 20)
	for i := range first {
		first[i] = base.Pair(0).Uint64()
	}

	distinct := []struct {
		name string
		draw uint64
	}{
		{"other pair", base.Pair(1).Uint64()},
		{"point of same pair", base.Point(0, 0).Uint64()},
		{"other seed", NewStreams(43).Pair(0).Uint64()},
	}
	for _, d := range distinct {
		assert.NotEqual(t, first[0], d.draw, d.name)
	}
}

func TestPointStreamsDisjointFromPairStream(t *testing.T) {
	s := NewStreams(7)

	seen := map[uint64]string{}
	record := func(name string, v uint64) {
		if prev, ok := seen[v]; ok {
			t.Fatalf("first draw collision between %s and %s", prev, name)
		}
		seen[v] = name
	}

	record("pair 0", s.Pair(0).Uint64())
	record("pair 1", s.Pair(1).Uint64())
	for p := 0; p < 4; p++ {
		record("point", s.Point(0, p).Uint64())
	}
}
