package model

import (
	"io"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Report is the ordered record of one load pass: which files produced a
// package and which did not (loader failure, allow-list skip, or an
// unrecognized tag).
type Report struct {
	Loaded    []string
	NotLoaded []string
}

// Success records a file whose package loaded.
func (r *Report) Success(fileName string) {
	r.Loaded = append(r.Loaded, fileName)
}

// Failure records a file whose package did not load.
func (r *Report) Failure(fileName string) {
	r.NotLoaded = append(r.NotLoaded, fileName)
}

// Summary writes the end-of-load enumeration of loaded and not-loaded
// files to w.
func (r *Report) Summary(w io.Writer) {
	printer.Fprintf(w, "\n   The following %d packages were successfully loaded.\n", len(r.Loaded))
	for _, f := range r.Loaded {
		printer.Fprintf(w, "      %s\n", filepath.Base(f))
	}
	if len(r.NotLoaded) == 0 {
		return
	}
	printer.Fprintf(w, "   The following %d packages were not loaded.\n", len(r.NotLoaded))
	for _, f := range r.NotLoaded {
		printer.Fprintf(w, "      %s\n", filepath.Base(f))
	}
}
