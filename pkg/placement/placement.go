// Package placement provides the pluggable strategies that pick a
// word's initial position and rotation before collision resolution.
//
// A strategy is consulted exactly once per word: if the proposed spot
// collides with already placed words, the engine walks the candidate
// along a spiral rather than asking the strategy again.
//
// Strategies are registered by name so callers can select them from
// configuration and plug in their own:
//
//	placement.Register("corners", func(seed uint64) placement.Strategy { ... })
//	strat, err := placement.New("corners", seed)
package placement

import (
	"fmt"
	"sort"
	"sync"

	"github.com/wordfield/wordfield/pkg/field"
)

// Rotation describes the discrete rotation steps available to a word.
// Orientations steps are spaced evenly between From and To inclusive;
// with a single orientation the rotation is pinned to From.
type Rotation struct {
	From         float64 // degrees
	To           float64 // degrees
	Orientations int     // number of discrete steps, >= 1
}

// DefaultRotation allows horizontal and vertical words.
var DefaultRotation = Rotation{From: -90, To: 90, Orientations: 2}

// Step returns the angular distance between adjacent orientation steps.
// It is zero when only one orientation is configured.
func (r Rotation) Step() float64 {
	if r.Orientations <= 1 {
		return 0
	}
	return (r.To - r.From) / float64(r.Orientations-1)
}

// Angle returns the rotation of the i-th orientation step.
func (r Rotation) Angle(i int) float64 {
	return r.From + r.Step()*float64(i)
}

// Candidate is a proposed starting point for a word, in field
// coordinates with the origin at the field center.
type Candidate struct {
	X        float64
	Y        float64
	Rotation float64 // degrees
}

// Context carries what a strategy may consult when proposing a
// candidate. Placed holds the center points of words placed so far.
type Context struct {
	Field    field.Field
	Rotation Rotation
	Placed   int // number of words already placed
}

// Strategy proposes one starting candidate per word.
type Strategy interface {
	Place(text string, weight float64, ctx Context) Candidate
}

// Factory builds a strategy instance. Strategies that draw random
// numbers seed their source from the given value so layouts are
// reproducible.
type Factory func(seed uint64) Strategy

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"random": newRandom,
		"center": newCenter,
	}
)

// DefaultName is the strategy used when no name is configured.
const DefaultName = "random"

// Register adds a named strategy factory, replacing any existing entry
// with the same name.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// New builds the strategy registered under name with the given seed.
func New(name string, seed uint64) (Strategy, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown placement strategy %q", name)
	}
	return f(seed), nil
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
