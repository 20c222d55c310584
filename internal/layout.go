package internal

import "bytes"

// Binary layout of an LBX container and its external palette source.
// All multi-byte integers are little-endian. The fixed offsets encode an
// undocumented external format and must be used verbatim, never recomputed.
const (
	// HeaderSize covers the entry count, signature and type tag.
	HeaderSize = 8

	SignatureOffset = 2
	TypeTagOffset   = 6

	// The offset table starts right after the header. Each entry reads
	// 8 consecutive bytes (4-byte start, 4-byte end), but the table
	// position advances by only 4 bytes per entry: entry i's end offset
	// shares its bytes with entry i+1's start offset.
	OffsetTableStart  = 8
	OffsetTableStride = 4

	// Image-type containers carry a metadata table with a fixed-width
	// name and comment per entry.
	NameTableStart  = 512
	NameTableStride = 32
	NameLen         = 8
	CommentLen      = 24

	// Palettes live in a separate resource file at a fixed position.
	PaletteOffset = 13444
	PaletteColors = 256
	PaletteSize   = PaletteColors * 3
)

// signature identifies a genuine LBX container.
var signature = []byte{0xAD, 0xFE, 0x00, 0x00}

// SignatureLen is the size of the signature in bytes.
var SignatureLen = len(signature)

// IsSignature checks if the given byte slice equals the container signature.
func IsSignature(data []byte) bool {
	return bytes.Equal(signature, data)
}

// Uint16 decodes a little-endian 16-bit value at offset off.
func Uint16(data []byte, off int) uint16 {
	return uint16(data[off]) | uint16(data[off+1])<<8
}

// Uint32 decodes a little-endian 32-bit value at offset off.
func Uint32(data []byte, off int) uint32 {
	return uint32(data[off]) |
		uint32(data[off+1])<<8 |
		uint32(data[off+2])<<16 |
		uint32(data[off+3])<<24
}
