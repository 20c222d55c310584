package lbx

import "bytes"

// Entry describes one sub-file packaged inside a container.
// The byte span [Start, End) locates the payload within the raw container
// bytes. Image-type containers carry a name and comment per entry; for all
// other types the name is synthesized from the entry's position.
type Entry struct {
	Name    string // 8 characters for image containers, sanitized
	Comment string // 24 characters for image containers, sanitized
	Start   uint32 // payload start within the container bytes
	End     uint32 // payload end (exclusive)
}

// span clamps the payload offsets to a buffer of the given size.
func (e Entry) span(size int64) (start, end int64) {
	start, end = int64(e.Start), int64(e.End)
	if start > size {
		start = size
	}
	if end > size {
		end = size
	}
	if end < start {
		end = start
	}
	return start, end
}

// Text decodes the entry's payload from the raw container bytes as display
// text. Offsets outside the buffer are clamped; trailing NUL padding is
// trimmed.
func (e Entry) Text(raw []byte) string {
	start, end := e.span(int64(len(raw)))
	return string(bytes.TrimRight(raw[start:end], "\x00"))
}
