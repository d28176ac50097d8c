// Package merge folds normalized metadata records into one accumulator
// using per-field combination policies.
//
// The caller supplies records in precedence order, lowest first; within one
// fold the later record's fields win wherever the field kind calls for
// replacement. Set-like fields union, page maps merge by index, identifier
// maps only gain sources, and title/stories are replaced wholesale
// regardless of strategy.
package merge
