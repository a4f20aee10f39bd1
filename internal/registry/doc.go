// Package registry maps name-file type tags to package-loader
// capabilities. The registry is built once by the embedding application
// and injected into the load operation, making the set of loadable
// package types an explicit contract rather than mutable global state.
package registry
