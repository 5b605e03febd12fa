// Package cache provides the layout cache used by the CLI and serving
// mode.
//
// Laying out a large word list is the slow path of a wordfield run, so
// computed layouts and rendered artifacts are cached keyed by a hash of
// their full inputs: identical words plus identical options always
// produce an identical layout, which makes the cache safe to share.
//
// Two implementations ship with the tool: a file-backed cache for CLI
// usage and a null cache for when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached value type. Layouts and artifacts are pure
// functions of their inputs, so long TTLs only trade disk for speed.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
	TTLSource   = 24 * time.Hour
)

// Cache stores opaque byte values with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts are the layout options that shape a computed layout.
// Every field participates in the cache key.
type LayoutKeyOpts struct {
	Width        float64
	Height       float64
	Strategy     string
	Spiral       string
	RotationFrom float64
	RotationTo   float64
	Orientations int
	MaxFontSize  float64
	FontFamily   string
	Seed         uint64
}

// ArtifactKeyOpts are the render options that shape an output artifact.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	Scale  float64
}

// Keyer generates cache keys for the different cached value types.
type Keyer interface {
	// LayoutKey generates a key for a computed layout, from the hash of
	// the input word list and the layout options.
	LayoutKey(wordsHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, from the
	// hash of the serialized layout and the render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string

	// HTTPKey generates a key for a cached HTTP response body.
	HTTPKey(namespace, url string) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(wordsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", wordsHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// HTTPKey generates a key for a cached HTTP response body.
func (k *DefaultKeyer) HTTPKey(namespace, url string) string {
	return hashKey("http", namespace, url)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
