// Package layout is the resizable pane engine behind panekit.
//
// Core abstractions:
//   - Pane: a Row or Col region with a minimum extent, either fixed or flexible
//   - Container: Rows or Cols, stacking panes and splitters along one axis
//   - Splitter: sits between two panes of the same kind and resizes them on drag
//   - PointerHub: the single global pointer capture a drag session acquires
//
// Everything here runs on the host's event loop; nothing is safe for
// concurrent use.
package layout
