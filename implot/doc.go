/*
Package implot wraps the ImPlot 2D plotting extension for Dear ImGui.

Plot primitives are described by builder descriptors (ScatterPlot,
LinePlot, BarsPlot, ImagePlot) that validate their data before anything
reaches the native plotter. A descriptor's Plot method silently draws
nothing when validation fails; the one-shot PlotUi methods run the same
validation and return the error instead.

	pu := implot.New(ui, native)

	pu.PlotScope("signal", imgui.Vec2{X: -1, Y: 300}, implot.PlotFlagsNone, func() {
	    if err := pu.Scatter("samples", xs, ys); err != nil {
	        // mismatched or out-of-range data; nothing was drawn
	    }
	})
*/
package implot
