// Package slider holds the bet slider's drag state machine and the pure
// mapping from its state to presentation attributes.
//
// Allowed here:
// - offset clamping, gesture settle rules, decision latching
// - the pointer bus that stands in for viewport-wide listeners
// - presentation lookup keyed on (Sign, Decision)
//
// Not allowed here:
// - terminal geometry, rendering, or bubbletea messages
package slider
