// Package errors provides structured error types for geometry conversion.
//
// Errors are classified on two axes: Phase (where in the conversion the
// failure happened) and Kind (what went wrong). Every error carries the
// context needed to act on it without re-running: the entity kind, the
// batch input index, the attribute name, and for index errors the
// offending raw index.
//
// All errors are terminal for the current conversion; nothing is retried
// and no errors are aggregated across fields or entities. Layers fail
// fast and return the first error encountered.
//
// Match errors by kind:
//
//	if errors.IsKind(err, errors.KindMissingAttr) { ... }
//
// or by Phase+Kind with the standard library:
//
//	stderrors.Is(err, errors.New(errors.PhaseDecode, errors.KindMissingAttr).Build())
package errors
