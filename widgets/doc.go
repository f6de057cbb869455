// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (cell canvas, gradients, popup overlay compositor)
//
// Not allowed here:
// - pointer handling, slider state transitions, or asset lookup
package widgets
