// Package packages implements the per-tag package loaders dispatched by
// the loader: the discretization (DIS/DISU), basic (BAS6), and
// output-control (OC) packages are parsed for the header values the
// model needs; every other tag is loaded generically, verifying the file
// and recording its identity. DefaultRegistry wires them into a registry
// for the standard MODFLOW tag set.
package packages
