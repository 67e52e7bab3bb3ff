package implot

import (
	"log/slog"
	"os"
	"sync"

	"github.com/go-dear/imgui"
)

// plotLogLevel controls debug logging for the plotting layer, mirroring
// the core package's verbosity switch.
var plotLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the plotting layer.
func SetVerbose(v bool) {
	if v {
		plotLogLevel.Set(slog.LevelDebug)
	} else {
		plotLogLevel.Set(slog.LevelInfo)
	}
}

var plotLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: plotLogLevel}))

func plotVerbose() bool { return plotLogLevel.Level() <= slog.LevelDebug }

// scopePlot is the token-stack name for plot scopes on the owning Ui.
const scopePlot = "Plot"

// PlotUi is the plotting façade for one Ui frame. It borrows the Ui (for
// the scratch buffer and the token stack) and adds the ImPlot entry
// points. A PlotUi is single-threaded, like the Ui it wraps.
type PlotUi struct {
	ui     *imgui.Ui
	native Native
}

// New creates a PlotUi over ui and the ImPlot native surface.
func New(ui *imgui.Ui, native Native) *PlotUi {
	if ui == nil {
		panic("implot: New called with nil Ui")
	}
	if native == nil {
		panic("implot: New called with nil native surface")
	}
	return &PlotUi{ui: ui, native: native}
}

// Ui returns the underlying Ui.
func (p *PlotUi) Ui() *imgui.Ui { return p.ui }

// PlotToken tracks a plot scope begun with BeginPlot. The token is
// returned whether or not the plot opened; End must run exactly once
// either way, and emits the native EndPlot only for opened plots.
type PlotToken struct {
	pu    *PlotUi
	seq   uint64
	open  bool
	ended bool
}

// Open reports whether the native side actually opened the plot. Items
// submitted into an unopened plot are ignored by the engine.
func (t *PlotToken) Open() bool { return t.open }

// End releases the plot scope.
func (t *PlotToken) End() {
	if t.ended {
		panic("implot: PlotToken ended twice")
	}
	t.pu.ui.EndScope(scopePlot, t.seq)
	t.ended = true
	if t.open {
		t.pu.native.EndPlot()
	}
}

// BeginPlot begins a plot with the given title, a default size and no
// flags. Size follows the native convention: -1 in a dimension means
// "fill available space".
func (p *PlotUi) BeginPlot(title string) *PlotToken {
	return p.BeginPlotFlags(title, imgui.Vec2{X: -1, Y: 0}, PlotFlagsNone)
}

// BeginPlotFlags begins a plot with an explicit size and flags.
func (p *PlotUi) BeginPlotFlags(title string, size imgui.Vec2, flags PlotFlags) *PlotToken {
	open := p.native.BeginPlot(p.ui.ScratchTxt(title), size, flags.Bits())
	return &PlotToken{pu: p, seq: p.ui.BeginScope(scopePlot), open: open}
}

// PlotScope runs fn inside a plot scope. fn runs only when the plot
// opened; the scope is released either way, including when fn panics.
func (p *PlotUi) PlotScope(title string, size imgui.Vec2, flags PlotFlags, fn func()) {
	tok := p.BeginPlotFlags(title, size, flags)
	defer tok.End()
	if tok.Open() {
		fn()
	}
}

// One-shot façade methods. Each builds the descriptor, validates it, and
// executes it, returning the validation error to the caller.

// Scatter plots X/Y markers. X and Y must have equal lengths.
func (p *PlotUi) Scatter(label string, xs, ys []float64) error {
	d := NewScatterPlot(label, xs, ys)
	if err := d.Validate(); err != nil {
		return err
	}
	d.Plot(p)
	return nil
}

// ScatterSimple plots markers for values at synthesized X positions
// (0, 1, 2, ...). An empty values slice is ErrEmptyData.
func (p *PlotUi) ScatterSimple(label string, values []float64) error {
	if len(values) == 0 {
		return ErrEmptyData
	}
	d := NewSimpleScatterPlot(label, values)
	if err := d.Validate(); err != nil {
		return err
	}
	d.Plot(p)
	return nil
}

// Line plots a connected X/Y series. X and Y must have equal lengths.
func (p *PlotUi) Line(label string, xs, ys []float64) error {
	d := NewLinePlot(label, xs, ys)
	if err := d.Validate(); err != nil {
		return err
	}
	d.Plot(p)
	return nil
}

// Bars plots vertical bars of the given values at X = 0, 1, 2, ...
func (p *PlotUi) Bars(label string, values []float64) error {
	d := NewBarsPlot(label, values)
	if err := d.Validate(); err != nil {
		return err
	}
	d.Plot(p)
	return nil
}

// Image draws a texture between two plot-space corners with default UVs
// and tint.
func (p *PlotUi) Image(label string, tex imgui.TextureID, boundsMin, boundsMax PlotPoint) error {
	d := NewImagePlot(label, tex, boundsMin, boundsMax)
	if err := d.Validate(); err != nil {
		return err
	}
	d.Plot(p)
	return nil
}

// Text draws text at a plot-space position.
func (p *PlotUi) Text(text string, x, y float64) {
	p.native.PlotText(p.ui.ScratchTxt(text), x, y, imgui.Vec2{}, TextFlagsNone.Bits())
}

// Dummy adds a legend entry without plotting anything, useful for
// reserving a legend slot.
func (p *PlotUi) Dummy(label string) {
	p.native.PlotDummy(p.ui.ScratchTxt(label), 0)
}

// validLabel reports whether a label survives scratch-buffer conversion
// unchanged (no embedded NUL).
func validLabel(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return false
		}
	}
	return true
}

// validateXY applies the shared checks for paired X/Y descriptors.
func validateXY(label string, xs, ys []float64, offset, stride int32) error {
	if !validLabel(label) {
		return ErrInvalidLabel
	}
	if len(xs) != len(ys) {
		return ErrMismatchedLengths
	}
	return validateWindow(len(xs), offset, stride)
}

// pointCount returns how many points a stride addresses in a slice of n
// float64 values: samples sit at raw indices 0, step, 2*step, ...
func pointCount(n int, stride int32) int {
	if n == 0 {
		return 0
	}
	step := int(stride / strideF64)
	return 1 + (n-1)/step
}

// validateWindow checks that offset and stride address points inside a
// densely packed float64 slice of length n. stride is a byte step and
// must be a positive multiple of the sample size; offset is a point index
// and must land on an addressable point.
func validateWindow(n int, offset, stride int32) error {
	if stride <= 0 || stride%strideF64 != 0 {
		return ErrOutOfBoundsOffset
	}
	if offset < 0 {
		return ErrOutOfBoundsOffset
	}
	if n == 0 {
		if offset != 0 {
			return ErrOutOfBoundsOffset
		}
		return nil
	}
	if int(offset) >= pointCount(n, stride) {
		return ErrOutOfBoundsOffset
	}
	return nil
}

// xSynthPool recycles the temporary X slices built for index-based
// descriptors (simple scatter, bars) so repeated plotting does not
// allocate per frame.
var xSynthPool = sync.Pool{
	New: func() any {
		s := make([]float64, 0, 256)
		return &s
	},
}

// synthX materializes start + i*scale for i in [0, n) from the pool. The
// caller must hand the slice back with releaseX before returning.
func synthX(n int, start, scale float64) *[]float64 {
	sp := xSynthPool.Get().(*[]float64)
	s := (*sp)[:0]
	for i := 0; i < n; i++ {
		s = append(s, start+float64(i)*scale)
	}
	*sp = s
	return sp
}

func releaseX(sp *[]float64) {
	xSynthPool.Put(sp)
}
