package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func contains(elems [8]Symmetry, s Symmetry) bool {
	for _, e := range elems {
		if e == s {
			return true
		}
	}
	return false
}

func TestSymmetryGroupAxioms(t *testing.T) {
	t.Run("elements are distinct", func(t *testing.T) {
		seen := map[Symmetry]bool{}
		for _, s := range Symmetries {
			seen[s] = true
		}
		require.Len(t, seen, 8, "Group should have 8 distinct elements")
		require.Equal(t, Identity, Symmetries[0], "Element 0 should be the identity")
	})

	t.Run("closure", func(t *testing.T) {
		for _, a := range Symmetries {
			for _, b := range Symmetries {
				require.True(t, contains(Symmetries, a.Mul(b)), "%v * %v should be a group element", a, b)
			}
		}
	})

	t.Run("identity", func(t *testing.T) {
		for _, a := range Symmetries {
			require.Equal(t, a, Identity.Mul(a), "e * %v", a)
			require.Equal(t, a, a.Mul(Identity), "%v * e", a)
		}
	})

	t.Run("inverses", func(t *testing.T) {
		for _, a := range Symmetries {
			inv := a.Inverse()
			require.True(t, contains(Symmetries, inv), "Inverse of %v should be a group element", a)
			require.Equal(t, Identity, a.Mul(inv), "%v * %v", a, inv)
			require.Equal(t, Identity, inv.Mul(a), "%v * %v", inv, a)
		}
	})

	t.Run("associativity", func(t *testing.T) {
		for _, a := range Symmetries {
			for _, b := range Symmetries {
				for _, c := range Symmetries {
					require.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), "(%v*%v)*%v", a, b, c)
				}
			}
		}
	})
}

func TestSymmetryApply(t *testing.T) {
	var b Board
	b.Play(Position{0, 0}, PieceA)
	b.Play(Position{0, 1}, PieceB)

	t.Run("flip mirrors columns", func(t *testing.T) {
		got := Symmetry{Flip: true}.Apply(b)
		require.Equal(t, PieceA, got[0][2])
		require.Equal(t, PieceB, got[0][1])
		require.Equal(t, 2, got.Count(PieceA)+got.Count(PieceB), "Action should preserve pieces")
	})

	t.Run("quarter turn moves corners and edges clockwise", func(t *testing.T) {
		got := Symmetry{Rotate: 1}.Apply(b)
		require.Equal(t, PieceA, got[0][2], "Top-left corner should move to top-right")
		require.Equal(t, PieceB, got[1][2], "Top edge should move to right edge")
	})

	t.Run("centre is fixed", func(t *testing.T) {
		var c Board
		c.Play(Position{1, 1}, PieceB)
		for _, s := range Symmetries {
			require.Equal(t, c, s.Apply(c), "Centre should be fixed by %v", s)
		}
	})

	t.Run("action respects composition", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for n := 0; n < 200; n++ {
			x := Decode(rng.Intn(NumStates))
			for _, g := range Symmetries {
				for _, h := range Symmetries {
					require.Equal(t, g.Apply(h.Apply(x)), g.Mul(h).Apply(x), "%v*%v on %v", g, h, x)
				}
			}
		}
	})
}

func TestCanonical(t *testing.T) {
	t.Run("invariant under every symmetry for every board", func(t *testing.T) {
		for index := 0; index < NumStates; index++ {
			b := Decode(index)
			want := Canonical(b)
			require.LessOrEqual(t, want, index, "Canonical index is the orbit minimum")
			for _, s := range Symmetries {
				if got := Canonical(s.Apply(b)); got != want {
					require.Failf(t, "canonical index changed", "board %d under %v: got %d want %d", index, s, got, want)
				}
			}
		}
	})

	t.Run("corner openings share an index", func(t *testing.T) {
		var indices []int
		for _, pos := range []Position{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
			var b Board
			b.Play(pos, PieceA)
			indices = append(indices, Canonical(b))
		}
		for _, index := range indices {
			require.Equal(t, indices[0], index, "All corner openings are equivalent")
		}

		var edge Board
		edge.Play(Position{0, 1}, PieceA)
		require.NotEqual(t, indices[0], Canonical(edge), "Edge and corner openings differ")
	})

	t.Run("three canonical openings", func(t *testing.T) {
		seen := map[int]bool{}
		var b Board
		for _, pos := range b.EmptyCells() {
			next := b
			next.Play(pos, PieceA)
			seen[Canonical(next)] = true
		}
		require.Len(t, seen, 3, "Corner, edge and centre are the only distinct openings")
	})
}
