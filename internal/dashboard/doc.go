// Package dashboard implements the client-side state for the task dashboard:
// pagination math, the filter/search query, stats aggregation, and the view
// controller's phase machine.
//
// Everything here is pure state and transition functions with no I/O. The TUI
// ([internal/ui]) and the CLI drive this package and perform the actual
// transport calls; responses are applied back through [State.ApplyFetch] and
// friends. Fetch responses carry a sequence number so that a response from a
// superseded fetch is dropped instead of clobbering newer state.
package dashboard
