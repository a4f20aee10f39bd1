// Package namefile parses MODFLOW-style name files: the text manifest
// enumerating every package and data file composing one model, each bound
// to a numeric unit. Parsing is format-only — dispatching entries to
// package loaders is the loader package's job.
package namefile
