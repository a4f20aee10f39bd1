// Package loader assembles a model from a parsed name file: it orders
// the entries (discretization, then basic, then everything else in
// declaration order), dispatches each to its registered package loader,
// tolerates per-package failures in forgiving mode, and reconciles the
// unconsumed entries into external file bindings on the model.
package loader
