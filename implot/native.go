package implot

import "github.com/go-dear/imgui"

// PlotPoint is a point in plot coordinates, field-ordered to match the
// native ImPlotPoint layout.
type PlotPoint struct {
	X, Y float64
}

// Native is the ImPlot entry-point surface consumed by this package. As
// with the core surface, a production build supplies a cgo-backed
// implementation and tests supply a recorder; data slices and label bytes
// alias caller memory and must not be retained past the call.
type Native interface {
	// BeginPlot reports whether the plot opened. EndPlot must be called
	// only for opened plots; PlotToken takes care of that.
	BeginPlot(title []byte, size imgui.Vec2, flags int32) bool
	EndPlot()

	PlotScatter(label []byte, xs, ys []float64, count int32, flags, offset, stride int32)
	PlotLine(label []byte, xs, ys []float64, count int32, flags, offset, stride int32)
	PlotBars(label []byte, values []float64, count int32, barSize, shift float64, flags int32)
	PlotImage(label []byte, tex imgui.TextureRef, boundsMin, boundsMax PlotPoint, uv0, uv1 imgui.Vec2, tint imgui.Vec4, flags int32)
	PlotText(text []byte, x, y float64, pixOffset imgui.Vec2, flags int32)
	PlotDummy(label []byte, flags int32)
}

// strideF64 is the byte step between consecutive float64 samples in a
// densely packed slice, the default stride for every data descriptor.
const strideF64 = 8
