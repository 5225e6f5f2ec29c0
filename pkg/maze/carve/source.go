package carve

import (
	"math/rand/v2"

	"github.com/matzehuels/mazewalk/pkg/maze"
)

// Source supplies the random direction orderings used while carving.
// Generate asks for a fresh permutation each time it starts carving from a
// cell, so implementations must not assume a single call per maze.
type Source interface {
	// Permutation returns the four directions in some order. Each direction
	// must appear exactly once.
	Permutation() [4]maze.Direction
}

// Seeded is a Source backed by a PCG generator, so the same seed always
// yields the same maze.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic source from seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// Permutation returns a uniformly random ordering of the four directions.
func (s *Seeded) Permutation() [4]maze.Direction {
	dirs := maze.Directions
	s.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	return dirs
}

// Fixed is a Source that returns the same ordering on every call.
// It makes carving fully predictable, which is useful in tests and examples.
type Fixed [4]maze.Direction

// Permutation returns the fixed ordering.
func (f Fixed) Permutation() [4]maze.Direction { return f }

// Sequence is a Source that replays a scripted list of orderings, cycling
// back to the start when exhausted. An empty Sequence behaves like
// Fixed(maze.Directions).
type Sequence struct {
	Orders [][4]maze.Direction
	next   int
}

// Permutation returns the next scripted ordering.
func (s *Sequence) Permutation() [4]maze.Direction {
	defer func() { s.next++ }()
	if len(s.Orders) == 0 {
		return maze.Directions
	}
	return s.Orders[s.next%len(s.Orders)]
}

// Calls returns how many permutations have been handed out.
func (s *Sequence) Calls() int { return s.next }
