package game

import "fmt"

// Symmetry is an element of the dihedral group of the square: an optional mirror
// about the vertical axis followed by Rotate quarter turns clockwise.
type Symmetry struct {
	Flip   bool
	Rotate int // in [0, 4)
}

// Identity leaves every board unchanged.
var Identity = Symmetry{}

// Symmetries holds the 8 group elements; element i is (i odd, i/2).
var Symmetries = func() [8]Symmetry {
	var elems [8]Symmetry
	for i := range elems {
		elems[i] = Symmetry{Flip: i%2 == 1, Rotate: i / 2}
	}
	return elems
}()

// Mul composes s with other so that s.Mul(other).Apply(b) == s.Apply(other.Apply(b)).
func (s Symmetry) Mul(other Symmetry) Symmetry {
	r := other.Rotate
	if s.Flip {
		r = -r
	}
	return Symmetry{
		Flip:   s.Flip != other.Flip,
		Rotate: ((s.Rotate+r)%4 + 4) % 4,
	}
}

// Inverse returns the element undoing s. Reflections are their own inverse.
func (s Symmetry) Inverse() Symmetry {
	if s.Flip {
		return s
	}
	return Symmetry{Rotate: (4 - s.Rotate) % 4}
}

func (s Symmetry) String() string {
	if s.Flip {
		return fmt.Sprintf("%ds", s.Rotate)
	}
	return fmt.Sprintf("%d", s.Rotate)
}

// Clockwise cycles of the corner and edge-midpoint cells under a quarter turn.
var (
	corners = [4]Position{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	edges   = [4]Position{{0, 1}, {1, 2}, {2, 1}, {1, 0}}
)

// Apply returns the image of b: flip first, then rotate.
func (s Symmetry) Apply(b Board) Board {
	if s.Flip {
		for i := 0; i < Size; i++ {
			b[i][0], b[i][2] = b[i][2], b[i][0]
		}
	}
	steps := ((s.Rotate % 4) + 4) % 4
	if steps == 0 {
		return b
	}
	out := b
	for k := 0; k < 4; k++ {
		from, to := corners[k], corners[(k+steps)%4]
		out[to.Row][to.Col] = b[from.Row][from.Col]
		from, to = edges[k], edges[(k+steps)%4]
		out[to.Row][to.Col] = b[from.Row][from.Col]
	}
	return out
}

// Canonical returns the smallest raw encoding among the 8 orientations of b, so
// that all symmetric boards share one index.
func Canonical(b Board) int {
	best := NumStates
	for _, s := range Symmetries {
		if index := Encode(s.Apply(b)); index < best {
			best = index
		}
	}
	return best
}
