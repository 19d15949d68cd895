package ising

import (
	"math/rand/v2"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// latticeFromRows builds a lattice from ±1 rows, for hand-computed cases.
func latticeFromRows(t *testing.T, rows [][]int) *Lattice {
	t.Helper()
	lat := New(len(rows), StartAllDown, nil)
	for i, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d values, want %d", i, len(row), len(rows))
		}
		for j, v := range row {
			switch v {
			case 1:
				lat.Set(i, j, SpinUp)
			case -1:
				lat.Set(i, j, SpinDown)
			default:
				t.Fatalf("invalid spin value %d at (%d,%d)", v, i, j)
			}
		}
	}
	return lat
}

func TestStartModes(t *testing.T) {
	up := New(4, StartAllUp, nil)
	if m := up.Magnetization(); m != 1 {
		t.Fatalf("all-up magnetization = %v, want 1", m)
	}

	down := New(4, StartAllDown, nil)
	if m := down.Magnetization(); m != -1 {
		t.Fatalf("all-down magnetization = %v, want -1", m)
	}
	if m := down.MeanAbsMagnetization(); m != 1 {
		t.Fatalf("all-down |magnetization| = %v, want 1", m)
	}

	random := New(16, StartRandom, testRand(1))
	for i, s := range random.Spins() {
		if v := s.Value(); v != -1 && v != 1 {
			t.Fatalf("site %d has value %d, want ±1", i, v)
		}
	}
	if m := random.MeanAbsMagnetization(); m > 0.5 {
		t.Fatalf("random lattice |magnetization| = %v, expected near 0", m)
	}
}

func TestWrapNeighborSum(t *testing.T) {
	lat := latticeFromRows(t, [][]int{
		{-1, -1, 1},
		{1, 1, 1},
		{-1, 1, 1},
	})

	// Center neighbors: up -1, down +1, left +1, right +1.
	if sum := lat.NeighborSum(1, 1); sum != 2 {
		t.Fatalf("NeighborSum(1,1) = %d, want 2", sum)
	}
	// Corner wraps to the opposite edges: (1,0)=1, (2,0)=-1 up, (0,1)=-1, (0,2)=1.
	if sum := lat.NeighborSum(0, 0); sum != 0 {
		t.Fatalf("NeighborSum(0,0) = %d, want 0", sum)
	}
	// Out-of-range coordinates wrap the same way.
	if got, want := lat.At(3, 3), lat.At(0, 0); got != want {
		t.Fatalf("At(3,3) = %v, want At(0,0) = %v", got, want)
	}
	if got, want := lat.At(-1, -1), lat.At(2, 2); got != want {
		t.Fatalf("At(-1,-1) = %v, want At(2,2) = %v", got, want)
	}
}

func TestFlipTouchesOneSite(t *testing.T) {
	lat := New(3, StartAllUp, nil)
	lat.Flip(1, 2)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := SpinUp
			if i == 1 && j == 2 {
				want = SpinDown
			}
			if got := lat.At(i, j); got != want {
				t.Fatalf("after flip, At(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}

	lat.Flip(1, 2)
	if m := lat.Magnetization(); m != 1 {
		t.Fatalf("double flip should restore the lattice, magnetization = %v", m)
	}
}

func TestEnergy(t *testing.T) {
	// 2×2 torus: 8 bond products, all +1 when fully ordered.
	up := New(2, StartAllUp, nil)
	if e := up.Energy(1, 0); e != -8 {
		t.Fatalf("ordered energy = %v, want -8", e)
	}
	if e := up.Energy(1, 1); e != -12 {
		t.Fatalf("ordered energy with field = %v, want -12", e)
	}

	// Checkerboard flips every bond product to -1 and zeroes the field term.
	checker := latticeFromRows(t, [][]int{
		{1, -1},
		{-1, 1},
	})
	if e := checker.Energy(1, 1); e != 8 {
		t.Fatalf("checkerboard energy = %v, want 8", e)
	}
}
