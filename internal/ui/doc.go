// Package ui hosts panekit layouts in a Bubble Tea program.
//
// Core abstractions:
//   - View: a pane's content with its own model, update, view (Elm-style)
//   - Panel: binds a layout.Pane to the View rendered inside it
//   - Button: pressable surface with a click animation for keyboard activation
//   - Spotlight: focus ring over buttons; Enter activates the focused one
//   - AppModel: root model; turns terminal mouse events into splitter drags
package ui
