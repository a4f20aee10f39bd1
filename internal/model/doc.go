// Package model defines the composed simulation model: loaded packages
// keyed by file-type tag, external file bindings passed through from the
// name file, and the load report. It knows nothing about file formats or
// the registry; the loader package populates it.
package model
