// Package palette extracts the 256-color RGB table that image-type
// containers are rendered with. The palette lives in a separate resource
// file at a fixed position; no relationship between a palette and any
// given container is validated.
package palette

import (
	"os"
	"sync"

	"github.com/lbxkit/lbx"
	"github.com/lbxkit/lbx/internal"
)

// RGB is one palette color.
type RGB struct {
	R, G, B byte
}

// Palette is a 256-color RGB table in source order.
type Palette [internal.PaletteColors]RGB

// At returns color i.
func (p *Palette) At(i int) RGB {
	return p[i]
}

// Parse extracts the palette from the raw bytes of a resource file.
// Fails if the buffer is too short to contain the palette slice.
func Parse(data []byte) (*Palette, error) {
	need := internal.PaletteOffset + internal.PaletteSize
	if len(data) < need {
		return nil, lbx.NewLoadError("palette source too short: need %d bytes, got %d", need, len(data))
	}

	var p Palette
	raw := data[internal.PaletteOffset:]
	for i := range p {
		p[i] = RGB{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return &p, nil
}

// Load reads the resource file at path, extracts the palette and installs
// it as the process-wide current palette. I/O failures are reported as
// *lbx.LoadError.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lbx.NewLoadError("read palette source %q: %s", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	Set(p)
	return p, nil
}

var (
	mu      sync.RWMutex
	current *Palette
)

// Set replaces the process-wide palette. The last load wins; there is no
// merging of palettes.
func Set(p *Palette) {
	mu.Lock()
	current = p
	mu.Unlock()
}

// Current returns the most recently loaded palette.
// Returns nil if no palette has been loaded yet.
func Current() *Palette {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
