package lbx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lbxkit/lbx/internal"
)

// ContainerType selects which entry metadata layout a container uses.
type ContainerType uint16

const (
	TypeImage   ContainerType = 0
	TypeText    ContainerType = 5
	TypeUnknown ContainerType = 0xFFFF
)

func (t ContainerType) String() string {
	switch t {
	case TypeImage:
		return "image"
	case TypeText:
		return "text"
	}
	return "unknown"
}

// containerType maps the header's type tag onto a ContainerType.
// Unrecognized tags are not an error; such containers still parse,
// but without the image metadata table.
func containerType(tag uint16) ContainerType {
	switch tag {
	case uint16(TypeImage):
		return TypeImage
	case uint16(TypeText):
		return TypeText
	}
	return TypeUnknown
}

// Container is a parsed LBX archive: the raw file bytes plus the decoded,
// ordered list of sub-file descriptors.
type Container struct {
	data    []byte
	typ     ContainerType
	entries []Entry
}

// Load reads and parses the container file at path.
// I/O failures are reported as *LoadError, malformed content as *FormatError.
func Load(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError("read container %q: %s", path, err)
	}
	return Parse(data)
}

// Parse decodes an LBX container from raw bytes.
// The container keeps a reference to data; callers must not modify the
// buffer afterwards.
//
// Parsing is all-or-nothing: if the header, offset table or metadata table
// would run past the buffer, no entries are produced. The decoded payload
// offsets themselves are stored as-is without bounds checks; see Validate.
func Parse(data []byte) (*Container, error) {
	if len(data) < internal.HeaderSize {
		return nil, newFormatError("file too short (%d bytes)", len(data))
	}
	if !internal.IsSignature(data[internal.SignatureOffset : internal.SignatureOffset+internal.SignatureLen]) {
		return nil, newFormatError("not a valid LBX container")
	}
	count := int(internal.Uint16(data, 0))
	typ := containerType(internal.Uint16(data, internal.TypeTagOffset))

	if count > 0 {
		need := internal.OffsetTableStart + (count-1)*internal.OffsetTableStride + 8
		if typ == TypeImage {
			if n := internal.NameTableStart + count*internal.NameTableStride; n > need {
				need = n
			}
		}
		if len(data) < need {
			return nil, newFormatError("file too short for %d entries (%d bytes)", count, len(data))
		}
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		var e Entry
		if typ == TypeImage {
			base := internal.NameTableStart + i*internal.NameTableStride
			e.Name = internal.SanitizeField(data[base : base+internal.NameLen])
			e.Comment = internal.SanitizeField(data[base+internal.NameLen : base+internal.NameLen+internal.CommentLen])
		} else {
			e.Name = fmt.Sprintf("File %d", i+1)
		}
		off := internal.OffsetTableStart + i*internal.OffsetTableStride
		e.Start = internal.Uint32(data, off)
		e.End = internal.Uint32(data, off+4)
		entries = append(entries, e)
	}

	return &Container{
		data:    data,
		typ:     typ,
		entries: entries,
	}, nil
}

// Type returns the container-wide type tag.
func (c *Container) Type() ContainerType {
	return c.typ
}

// Count returns the number of entries.
func (c *Container) Count() int {
	return len(c.entries)
}

// Entries returns the sub-file descriptors in table order.
// The returned slice is a copy and may be modified by the caller.
func (c *Container) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Bytes returns the raw container bytes. The buffer is shared, not copied.
func (c *Container) Bytes() []byte {
	return c.data
}

// Reader returns a reader over entry i's payload span.
// Offsets outside the buffer are clamped.
// Returns nil if no entry with that index exists.
func (c *Container) Reader(i int) io.Reader {
	if i < 0 || i >= len(c.entries) {
		return nil
	}
	start, end := c.entries[i].span(int64(len(c.data)))
	return io.NewSectionReader(bytes.NewReader(c.data), start, end-start)
}

// Text returns the decoded text of the first entry.
// Returns an empty string if the container has no entries.
func (c *Container) Text() string {
	if len(c.entries) == 0 {
		return ""
	}
	return c.entries[0].Text(c.data)
}

// Validate checks that every entry's payload span lies within the container
// and that no span is inverted. The format itself gives no such guarantee
// and Parse deliberately stores offsets exactly as decoded, so this is an
// optional, stricter check for callers about to extract payloads.
func (c *Container) Validate() error {
	size := uint64(len(c.data))
	for i, e := range c.entries {
		if e.Start > e.End || uint64(e.End) > size {
			return newFormatError("entry %d (%q): payload span [%d, %d) outside container (%d bytes)",
				i, e.Name, e.Start, e.End, size)
		}
	}
	return nil
}
