// Package ndarray bridges parsed array views and gonum matrices.
//
// The bridge is narrow on purpose: gonum's mat types are float64
// backed, so only f64 arrays of rank 1 or 2 cross it. Everything else
// is rejected rather than silently converted; callers who want a
// converted copy can build one from the typed accessor helpers.
package ndarray
