package placement

import (
	"math"
	"math/rand/v2"
)

// random scatters starting candidates around the middle half of the
// field. The draw keeps candidates away from the field edges so the
// spiral has room to nudge them in every direction.
type random struct {
	rng *rand.Rand
}

func newRandom(seed uint64) Strategy {
	return &random{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (s *random) Place(text string, weight float64, ctx Context) Candidate {
	f := ctx.Field
	x := math.Round(f.Width*(s.rng.Float64()+0.5)/2) - f.Width/2
	y := math.Round(f.Height*(s.rng.Float64()+0.5)/2) - f.Height/2

	rot := ctx.Rotation
	angle := rot.From
	if rot.Orientations > 1 {
		angle = rot.Angle(s.rng.IntN(rot.Orientations))
	}

	return Candidate{X: x, Y: y, Rotation: angle}
}

// center always proposes the field origin and cycles deterministically
// through the configured orientations. Useful for layouts that should
// grow outward from the middle, and for reproducible tests.
type center struct {
	next int
}

func newCenter(seed uint64) Strategy {
	return &center{}
}

func (s *center) Place(text string, weight float64, ctx Context) Candidate {
	rot := ctx.Rotation
	angle := rot.From
	if rot.Orientations > 1 {
		angle = rot.Angle(s.next % rot.Orientations)
	}
	s.next++
	return Candidate{X: 0, Y: 0, Rotation: angle}
}
