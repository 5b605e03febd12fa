// Package spiral provides the candidate-offset generators used to retry
// word placement after a collision.
//
// A spiral is a deterministic sequence of offsets with non-decreasing
// radius: attempt 0 is the origin, and as the attempt counter grows the
// offsets sweep outward without bound. The layout engine walks a word
// along this sequence until it finds a free spot or gives up.
//
// Spirals are registered by name so callers can select them from
// configuration and plug in their own:
//
//	spiral.Register("mine", func(attempt int) (x, y float64) { ... })
//	fn, err := spiral.Lookup("mine")
package spiral

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Func generates the candidate offset for the given attempt counter.
// Implementations must be pure: the same attempt always yields the same
// offset, and the offset radius must be non-decreasing and unbounded as
// attempt grows.
type Func func(attempt int) (x, y float64)

// Archimedean is the default spiral: t = attempt * 0.1, offset
// (t*cos(t), t*sin(t)). The radius grows linearly with the attempt
// counter.
func Archimedean(attempt int) (x, y float64) {
	t := float64(attempt) * 0.1
	return t * math.Cos(t), t * math.Sin(t)
}

// Rectangular walks the edge of an expanding square, one step of unit
// length per attempt. Useful for layouts that should fill corners before
// the Archimedean sweep would reach them.
func Rectangular(attempt int) (x, y float64) {
	// Unit steps along an expanding square: right 1, down 1, left 2,
	// up 2, right 3, down 3, ...
	dirs := [4][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	dir, run, steps := 0, 1, 0
	for i := 0; i < attempt; i++ {
		x += dirs[dir][0]
		y += dirs[dir][1]
		steps++
		if steps == run {
			steps = 0
			dir = (dir + 1) % 4
			if dir%2 == 0 {
				run++
			}
		}
	}
	return x, y
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Func{
		"archimedean": Archimedean,
		"rectangular": Rectangular,
	}
)

// DefaultName is the spiral used when no name is configured.
const DefaultName = "archimedean"

// Register adds a named spiral, replacing any existing entry with the
// same name.
func Register(name string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Lookup returns the spiral registered under name.
func Lookup(name string) (Func, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown spiral %q", name)
	}
	return fn, nil
}

// Names returns the registered spiral names in sorted order.
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
