package piece

import (
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/grid"
)

// MaxPerQueue is the most pieces of one type the factory lets into a queue.
const MaxPerQueue = 2

// MaxQueueCapacity is the largest queue the factory can always extend
// without every type hitting MaxPerQueue.
const MaxQueueCapacity = NumTypes * MaxPerQueue

// Factory deals new pieces for a playfield of a fixed width.
type Factory struct {
	rand         *rand.Rand
	width        int
	fallInterval time.Duration
	counts       *intmap.Map[Type, int]
}

// NewFactory creates a factory for a playfield width columns wide. r is the
// random source used for shape selection.
func NewFactory(width int, fallInterval time.Duration, r *rand.Rand) *Factory {
	return &Factory{
		rand:         r,
		width:        width,
		fallInterval: fallInterval,
		counts:       intmap.New[Type, int](NumTypes),
	}
}

// SpawnPos returns the centered row-0 position for a shape.
func (f *Factory) SpawnPos(s Shape) grid.Pos {
	return grid.Pos{X: f.width/2 - s.Width()/2, Y: 0}
}

// Make picks a shape uniformly at random, re-rolling any type that already
// appears MaxPerQueue times in queue, and returns a new piece at that
// shape's spawn position.
func (f *Factory) Make(queue []*Piece) *Piece {
	f.counts.Clear()
	for _, p := range queue {
		n, _ := f.counts.Get(p.Type())
		f.counts.Put(p.Type(), n+1)
	}

	if !f.canDeal() {
		// Only reachable with a queue longer than MaxQueueCapacity.
		f.counts.Clear()
	}

	for {
		t := Types[f.rand.IntN(NumTypes)]
		if n, _ := f.counts.Get(t); n >= MaxPerQueue {
			continue
		}
		shape, _ := Template(t)
		return New(t, f.SpawnPos(shape), f.fallInterval)
	}
}

func (f *Factory) canDeal() bool {
	for _, t := range Types {
		if n, _ := f.counts.Get(t); n < MaxPerQueue {
			return true
		}
	}
	return false
}
