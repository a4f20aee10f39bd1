package namefile

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one non-comment line of a name file: a file-type tag, a
// positive unit number, a file path, and an optional REPLACE marker.
// Entries are immutable once parsed.
type Entry struct {
	Unit     int
	FileType string // upper-cased tag as written, e.g. "DIS", "DATA(BINARY)"
	FileName string // path as written in the name file
	Replace  bool

	file *os.File // open peek handle, nil unless the caller asked for one
}

// IsData reports whether the entry's tag marks a raw data file rather
// than a recognized package (DATA or DATA(BINARY)).
func (e *Entry) IsData() bool {
	return strings.Contains(strings.ToLower(e.FileType), "data")
}

// IsBinary reports whether the entry refers to a binary file, either via
// its tag or the REPLACE marker.
func (e *Entry) IsBinary() bool {
	return strings.Contains(strings.ToLower(e.FileType), "binary") || e.Replace
}

// NameFile is the parsed manifest: the heading comment block, any
// metadata carried on it, and the entries in declaration order.
type NameFile struct {
	Path    string
	Heading string
	Meta    map[string]string

	Entries []*Entry
	byUnit  map[int]*Entry
}

// ByUnit returns the entry bound to the given unit number.
func (nf *NameFile) ByUnit(unit int) (*Entry, bool) {
	e, ok := nf.byUnit[unit]
	return e, ok
}

// Units returns all unit numbers in declaration order.
func (nf *NameFile) Units() []int {
	units := make([]int, 0, len(nf.Entries))
	for _, e := range nf.Entries {
		units = append(units, e.Unit)
	}
	return units
}

// Close releases any peek handles opened during parsing. Safe to call
// more than once.
func (nf *NameFile) Close() error {
	var first error
	for _, e := range nf.Entries {
		if e.file == nil {
			continue
		}
		if err := e.file.Close(); err != nil && first == nil {
			first = fmt.Errorf("closing %s: %w", e.FileName, err)
		}
		e.file = nil
	}
	return first
}

// FormatError reports an unreadable or malformed name file.
type FormatError struct {
	Path string
	Line int // 0 when the file itself could not be read
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("name file %s: line %d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("name file %s: %s", e.Path, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }
