package implot

// LinePlot describes a connected X/Y series. Validation matches
// ScatterPlot: paired lengths, positive stride, in-bounds offset.
type LinePlot struct {
	label  string
	xs, ys []float64
	flags  LineFlags
	offset int32
	stride int32
}

// NewLinePlot creates a line descriptor for the given label and data.
func NewLinePlot(label string, xs, ys []float64) LinePlot {
	return LinePlot{
		label:  label,
		xs:     xs,
		ys:     ys,
		stride: strideF64,
	}
}

// WithFlags returns the descriptor with line flags set.
func (d LinePlot) WithFlags(flags LineFlags) LinePlot {
	d.flags = flags
	return d
}

// WithOffset returns the descriptor with the starting point index set.
func (d LinePlot) WithOffset(offset int32) LinePlot {
	d.offset = offset
	return d
}

// WithStride returns the descriptor with the byte step between samples
// set.
func (d LinePlot) WithStride(stride int32) LinePlot {
	d.stride = stride
	return d
}

// Label returns the descriptor's label.
func (d LinePlot) Label() string { return d.label }

// Validate checks the descriptor against the closed error set.
func (d LinePlot) Validate() error {
	return validateXY(d.label, d.xs, d.ys, d.offset, d.stride)
}

// Plot issues the native line call. Invalid descriptors draw nothing.
func (d LinePlot) Plot(pu *PlotUi) {
	if err := d.Validate(); err != nil {
		if plotVerbose() {
			plotLogger.Debug("line skipped", "label", d.label, "err", err)
		}
		return
	}
	count := pointCount(len(d.xs), d.stride)
	if count == 0 {
		return
	}
	pu.native.PlotLine(pu.ui.ScratchTxt(d.label), d.xs, d.ys,
		int32(count), d.flags.Bits(), d.offset, d.stride)
}
