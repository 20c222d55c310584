package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lbxkit/lbx"
	"github.com/lbxkit/lbx/internal"
)

// buildSource creates a resource file buffer whose palette slice is filled
// with a recognizable per-color pattern seeded by tag.
func buildSource(tag byte) []byte {
	data := make([]byte, internal.PaletteOffset+internal.PaletteSize)
	for i := 0; i < internal.PaletteColors; i++ {
		base := internal.PaletteOffset + i*3
		data[base] = tag
		data[base+1] = byte(i)
		data[base+2] = byte(255 - i)
	}
	return data
}

func TestParse(t *testing.T) {
	data := buildSource(0x42)

	p, err := Parse(data)
	assert.NoError(t, err)

	for i := 0; i < internal.PaletteColors; i++ {
		assert.Equal(t, RGB{R: 0x42, G: byte(i), B: byte(255 - i)}, p.At(i), "color %d", i)
	}
}

func TestParse_TooShort(t *testing.T) {
	data := buildSource(0x42)

	p, err := Parse(data[:len(data)-1])
	assert.EqualError(t, err, "palette source too short: need 14212 bytes, got 14211")
	_, ok := err.(*lbx.LoadError)
	assert.True(t, ok)
	assert.Nil(t, p)
}

func TestLoad_lastLoadWins(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "fonts1.res")
	assert.NoError(t, os.WriteFile(first, buildSource(1), 0644))
	second := filepath.Join(dir, "fonts2.res")
	assert.NoError(t, os.WriteFile(second, buildSource(2), 0644))

	p1, err := Load(first)
	assert.NoError(t, err)
	assert.Equal(t, p1, Current())
	assert.Equal(t, byte(1), Current().At(0).R)

	p2, err := Load(second)
	assert.NoError(t, err)
	assert.Equal(t, p2, Current())
	assert.Equal(t, byte(2), Current().At(0).R)
}

func TestLoad_NoSuchFile(t *testing.T) {
	before := Current()

	p, err := Load("./:this file does not exist!")
	assert.Error(t, err)
	_, ok := err.(*lbx.LoadError)
	assert.True(t, ok)
	assert.Nil(t, p)

	// a failed load must not replace the palette
	assert.Equal(t, before, Current())
}

func TestSet(t *testing.T) {
	var p Palette
	p[0] = RGB{R: 10, G: 20, B: 30}

	Set(&p)
	assert.Equal(t, &p, Current())
}
