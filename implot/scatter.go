package implot

// Plot is an unexecuted, validated plot descriptor. Execution is a no-op
// when validation fails; callers that want the distinction validate first
// or use the one-shot PlotUi methods.
type Plot interface {
	Label() string
	Validate() error
	Plot(pu *PlotUi)
}

// ScatterPlot describes a marker series with explicit X and Y data. The
// descriptor borrows the caller's slices without copying; the caller must
// keep them alive until Plot returns.
type ScatterPlot struct {
	label  string
	xs, ys []float64
	flags  ScatterFlags
	offset int32
	stride int32
}

// NewScatterPlot creates a scatter descriptor for the given label and
// data.
func NewScatterPlot(label string, xs, ys []float64) ScatterPlot {
	return ScatterPlot{
		label:  label,
		xs:     xs,
		ys:     ys,
		stride: strideF64,
	}
}

// WithFlags returns the descriptor with scatter flags set.
func (d ScatterPlot) WithFlags(flags ScatterFlags) ScatterPlot {
	d.flags = flags
	return d
}

// WithOffset returns the descriptor with the starting point index set.
func (d ScatterPlot) WithOffset(offset int32) ScatterPlot {
	d.offset = offset
	return d
}

// WithStride returns the descriptor with the byte step between samples
// set. The default is the size of one float64.
func (d ScatterPlot) WithStride(stride int32) ScatterPlot {
	d.stride = stride
	return d
}

// Label returns the descriptor's label.
func (d ScatterPlot) Label() string { return d.label }

// Validate checks the descriptor against the closed error set. It depends
// only on the final field values; chaining order does not matter.
func (d ScatterPlot) Validate() error {
	return validateXY(d.label, d.xs, d.ys, d.offset, d.stride)
}

// Plot issues the native scatter call. Invalid descriptors draw nothing.
func (d ScatterPlot) Plot(pu *PlotUi) {
	if err := d.Validate(); err != nil {
		if plotVerbose() {
			plotLogger.Debug("scatter skipped", "label", d.label, "err", err)
		}
		return
	}
	count := pointCount(len(d.xs), d.stride)
	if count == 0 {
		return
	}
	pu.native.PlotScatter(pu.ui.ScratchTxt(d.label), d.xs, d.ys,
		int32(count), d.flags.Bits(), d.offset, d.stride)
}

// SimpleScatterPlot describes a marker series with Y data only; X values
// are synthesized as start + i*scale.
type SimpleScatterPlot struct {
	label  string
	values []float64
	xScale float64
	xStart float64
	flags  ScatterFlags
}

// NewSimpleScatterPlot creates a simple scatter descriptor. X defaults to
// the sample index (start 0, scale 1).
func NewSimpleScatterPlot(label string, values []float64) SimpleScatterPlot {
	return SimpleScatterPlot{
		label:  label,
		values: values,
		xScale: 1,
	}
}

// WithXScale returns the descriptor with the X step per sample set.
func (d SimpleScatterPlot) WithXScale(scale float64) SimpleScatterPlot {
	d.xScale = scale
	return d
}

// WithXStart returns the descriptor with the X value of the first sample
// set.
func (d SimpleScatterPlot) WithXStart(start float64) SimpleScatterPlot {
	d.xStart = start
	return d
}

// WithFlags returns the descriptor with scatter flags set.
func (d SimpleScatterPlot) WithFlags(flags ScatterFlags) SimpleScatterPlot {
	d.flags = flags
	return d
}

// Label returns the descriptor's label.
func (d SimpleScatterPlot) Label() string { return d.label }

// Validate checks the label. Empty values are valid at the descriptor
// level: there is simply nothing to draw.
func (d SimpleScatterPlot) Validate() error {
	if !validLabel(d.label) {
		return ErrInvalidLabel
	}
	return nil
}

// Plot synthesizes the X series and issues the native scatter call.
func (d SimpleScatterPlot) Plot(pu *PlotUi) {
	if err := d.Validate(); err != nil {
		if plotVerbose() {
			plotLogger.Debug("simple scatter skipped", "label", d.label, "err", err)
		}
		return
	}
	if len(d.values) == 0 {
		return
	}
	xp := synthX(len(d.values), d.xStart, d.xScale)
	defer releaseX(xp)
	pu.native.PlotScatter(pu.ui.ScratchTxt(d.label), *xp, d.values,
		int32(len(d.values)), d.flags.Bits(), 0, strideF64)
}
