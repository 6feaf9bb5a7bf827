// Package ui provides terminal rendering for the airstatus CLI.
//
// Unlike a full-screen TUI, everything here follows a "print and
// scroll" pattern: the watch dashboard appends styled blocks to
// stdout, with a single concurrent element - the busy spinner - that
// owns the cursor line until live data arrives.
//
// # Capability profile
//
// All rendering is driven by an immutable Profile detected once at
// startup (color support, Unicode glyphs, terminal width). Render
// calls take the profile explicitly; there is no ambient formatting
// state. Indeterminate capability queries degrade to no color, ASCII
// glyphs, and 80 columns.
//
// # Terminal ownership
//
// The cursor line is a shared resource between the Spinner and the
// Renderer. Handoff is serialized: Spinner.Stop joins the animation
// goroutine before returning, so once it returns the renderer can
// write without interleaving. The spinner hides the cursor on Start
// and restores it on Stop; the lifecycle controller guarantees Stop
// runs on every exit path.
package ui
