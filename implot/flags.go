package implot

// PlotFlags mirrors ImPlotFlags for BeginPlot.
type PlotFlags int32

const (
	PlotFlagsNone        PlotFlags = 0
	PlotFlagsNoTitle     PlotFlags = 1 << 0
	PlotFlagsNoLegend    PlotFlags = 1 << 1
	PlotFlagsNoMouseText PlotFlags = 1 << 2
	PlotFlagsNoInputs    PlotFlags = 1 << 3
	PlotFlagsNoMenus     PlotFlags = 1 << 4
	PlotFlagsNoBoxSelect PlotFlags = 1 << 5
	PlotFlagsNoFrame     PlotFlags = 1 << 6
	PlotFlagsEqual       PlotFlags = 1 << 7
	PlotFlagsCrosshairs  PlotFlags = 1 << 8

	PlotFlagsCanvasOnly = PlotFlagsNoTitle | PlotFlagsNoLegend |
		PlotFlagsNoMouseText | PlotFlagsNoInputs | PlotFlagsNoMenus |
		PlotFlagsNoBoxSelect
)

const plotFlagsMask = PlotFlagsCanvasOnly | PlotFlagsNoFrame |
	PlotFlagsEqual | PlotFlagsCrosshairs

// Has reports whether every bit of other is set in f.
func (f PlotFlags) Has(other PlotFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f PlotFlags) Bits() int32 { return int32(f & plotFlagsMask) }

// ScatterFlags mirrors ImPlotScatterFlags. The low bits are the shared
// item flags.
type ScatterFlags int32

const (
	ScatterFlagsNone     ScatterFlags = 0
	ScatterFlagsNoLegend ScatterFlags = 1 << 0
	ScatterFlagsNoFit    ScatterFlags = 1 << 1
	ScatterFlagsNoClip   ScatterFlags = 1 << 10
)

const scatterFlagsMask = ScatterFlagsNoLegend | ScatterFlagsNoFit | ScatterFlagsNoClip

// Has reports whether every bit of other is set in f.
func (f ScatterFlags) Has(other ScatterFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f ScatterFlags) Bits() int32 { return int32(f & scatterFlagsMask) }

// LineFlags mirrors ImPlotLineFlags.
type LineFlags int32

const (
	LineFlagsNone     LineFlags = 0
	LineFlagsNoLegend LineFlags = 1 << 0
	LineFlagsNoFit    LineFlags = 1 << 1
	LineFlagsSegments LineFlags = 1 << 10
	LineFlagsLoop     LineFlags = 1 << 11
	LineFlagsSkipNaN  LineFlags = 1 << 12
	LineFlagsNoClip   LineFlags = 1 << 13
	LineFlagsShaded   LineFlags = 1 << 14
)

const lineFlagsMask = LineFlagsNoLegend | LineFlagsNoFit | LineFlagsSegments |
	LineFlagsLoop | LineFlagsSkipNaN | LineFlagsNoClip | LineFlagsShaded

// Has reports whether every bit of other is set in f.
func (f LineFlags) Has(other LineFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f LineFlags) Bits() int32 { return int32(f & lineFlagsMask) }

// BarsFlags mirrors ImPlotBarsFlags.
type BarsFlags int32

const (
	BarsFlagsNone       BarsFlags = 0
	BarsFlagsNoLegend   BarsFlags = 1 << 0
	BarsFlagsNoFit      BarsFlags = 1 << 1
	BarsFlagsHorizontal BarsFlags = 1 << 10
)

const barsFlagsMask = BarsFlagsNoLegend | BarsFlagsNoFit | BarsFlagsHorizontal

// Has reports whether every bit of other is set in f.
func (f BarsFlags) Has(other BarsFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f BarsFlags) Bits() int32 { return int32(f & barsFlagsMask) }

// ImageFlags mirrors ImPlotImageFlags.
type ImageFlags int32

const (
	ImageFlagsNone     ImageFlags = 0
	ImageFlagsNoLegend ImageFlags = 1 << 0
	ImageFlagsNoFit    ImageFlags = 1 << 1
)

const imageFlagsMask = ImageFlagsNoLegend | ImageFlagsNoFit

// Has reports whether every bit of other is set in f.
func (f ImageFlags) Has(other ImageFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f ImageFlags) Bits() int32 { return int32(f & imageFlagsMask) }

// TextFlags mirrors ImPlotTextFlags for PlotText.
type TextFlags int32

const (
	TextFlagsNone     TextFlags = 0
	TextFlagsVertical TextFlags = 1 << 10
)

const textFlagsMask = TextFlagsVertical

// Has reports whether every bit of other is set in f.
func (f TextFlags) Has(other TextFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f TextFlags) Bits() int32 { return int32(f & textFlagsMask) }
