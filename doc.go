/*
Package imgui provides a safe, typed binding layer over the Dear ImGui
immediate-mode GUI library. The heavy lifting happens in the native engine;
this package contributes memory-safe scope handling, typed enums and flag
sets, a reusable text scratch buffer, and texture-handle interop.

The native entry points are consumed through the Native interface. A
production build plugs in a cgo-backed implementation; tests plug in a
recorder (see the nativetest package). This keeps the binding layer itself
free of build-time native dependencies.

# Quick Start

	ui := imgui.NewUi(native)

	for running {
	    ui.BeginFrame()

	    tok := ui.BeginDisabled()
	    ui.SmallButton("locked")
	    tok.End()

	    ui.Disabled(true, func() {
	        ui.BulletText("also locked")
	    })

	    ui.EndFrame()
	}

# Scopes

Every Begin* call returns a token whose End method emits the matching
native end call. Tokens must be ended in LIFO order; ending out of order or
twice panics, since a misbalanced native stack corrupts the engine state.
Use defer, or the closure helpers (Disabled, StyleScope) which pair the
calls for you and stay balanced across panics.

EndFrame verifies that no scope is still open and panics otherwise.

# Text

Widget labels cross the ABI as NUL-terminated bytes. The Ui owns one
scratch buffer that is rewritten on every widget call; the byte view handed
to the native side is valid only until the next call on the same Ui.
Strings containing an embedded NUL are truncated at the first NUL.

# Plotting

The implot subpackage wraps the ImPlot extension with validated builder
descriptors (scatter, line, bars, image) and a PlotUi façade.

# Threading

A Ui and everything it owns is single-threaded. All calls must happen on
the thread that owns the native context.
*/
package imgui
