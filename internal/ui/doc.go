// Package ui contains the Bubble Tea program that shows PAN-OS objects as
// floating, draggable windows.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, resize, bootstrap lists, resolutions).
//   - Init starts two bootstrap fetches (all address groups, all addresses).
//     Each result opens one searchable window.
//   - Clicking a member link, pressing enter on it, or using the open prompt
//     resolves the name and opens a new window. Hovering a link (or pressing
//     p) shows the single hover bubble.
//
// State ownership:
//   - Stacking values, the cascade offset, the resolution cache and the last
//     hovered name live in session.State and are only touched from Update.
//   - Window geometry belongs to wm.Manager; each window's content and list
//     state (cursor, highlight, search query) lives in a pane keyed by window
//     ID.
//   - Network lookups run as commands through internal/ui/command. They call
//     resolver.Fetch, which touches no shared state; the result is cached by
//     the resolvedMsg handler.
//
// Rendering composites windows bottom to top on a canvas.Canvas, then draws
// the hover bubble, the optional footer and the status bar.
package ui
