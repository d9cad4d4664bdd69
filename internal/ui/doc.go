// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for managing tasks:
//  1. [DashboardView] : Browse, search, filter and paginate through tasks
//  2. [FormView] : Create a task or edit an existing one
//  3. [ConfirmDeleteView] : Confirm deletion before it is sent
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All remote calls run as commands and report back via result messages carrying a
// fetch sequence number, so responses from superseded requests are dropped.
// Search input is debounced before it commits a query change.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l, enter, esc, y/n, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
