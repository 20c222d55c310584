package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSignature(t *testing.T) {
	assert.True(t, IsSignature([]byte{0xAD, 0xFE, 0x00, 0x00}))

	assert.False(t, IsSignature([]byte{0x00, 0xFE, 0x00, 0x00}))
	assert.False(t, IsSignature([]byte{0xAD, 0xFE, 0x00}))
	assert.False(t, IsSignature([]byte{0xAD, 0xFE, 0x00, 0x00, 0x00}))
}

func TestUint16(t *testing.T) {
	tests := []struct {
		b0, b1 byte
		want   uint16
	}{
		{0x00, 0x00, 0},
		{0x34, 0x12, 0x1234},
		{0x01, 0x00, 1},
		{0x00, 0x01, 256},
		{0xFF, 0xFF, 65535},
	}
	for _, tt := range tests {
		got := Uint16([]byte{tt.b0, tt.b1}, 0)
		assert.Equal(t, tt.want, got)
		// low byte first: b0 + 256*b1
		assert.Equal(t, uint16(tt.b0)+256*uint16(tt.b1), got)
	}
}

func TestUint32(t *testing.T) {
	tests := []struct {
		b    []byte
		want uint32
	}{
		{[]byte{0, 0, 0, 0}, 0},
		{[]byte{1, 0, 0, 0}, 1},
		{[]byte{0, 1, 0, 0}, 256},
		{[]byte{0, 0, 1, 0}, 65536},
		{[]byte{0, 0, 0, 1}, 16777216},
		{[]byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{[]byte{255, 255, 255, 255}, 4294967295},
	}
	for _, tt := range tests {
		got := Uint32(tt.b, 0)
		assert.Equal(t, tt.want, got)
		want := uint32(tt.b[0]) + 256*uint32(tt.b[1]) + 65536*uint32(tt.b[2]) + 16777216*uint32(tt.b[3])
		assert.Equal(t, want, got)
	}
}

func TestUint32_offset(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0x10, 0x20, 0x30, 0x40}
	assert.Equal(t, uint32(0x40302010), Uint32(data, 2))
}
