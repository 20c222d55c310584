package lbx

import "fmt"

// FormatError reports that a byte buffer is not a valid LBX container.
type FormatError string

func (e *FormatError) Error() string {
	return string(*e)
}

func newFormatError(format string, a ...interface{}) *FormatError {
	err := FormatError(fmt.Sprintf(format, a...))
	return &err
}

// LoadError reports problems reading container or palette source files.
type LoadError string

func (e *LoadError) Error() string {
	return string(*e)
}

// NewLoadError creates a LoadError.
// It is shared with subpackages that load external resource files.
func NewLoadError(format string, a ...interface{}) *LoadError {
	err := LoadError(fmt.Sprintf(format, a...))
	return &err
}
