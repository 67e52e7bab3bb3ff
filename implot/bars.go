package implot

// BarsPlot describes a bar series. Bars are drawn at X = 0, 1, 2, ...
// with the given bar size; a shift moves the whole series along X, which
// is how grouped bars are laid side by side.
type BarsPlot struct {
	label   string
	values  []float64
	barSize float64
	shift   float64
	flags   BarsFlags
}

// NewBarsPlot creates a bars descriptor with the default bar size.
func NewBarsPlot(label string, values []float64) BarsPlot {
	return BarsPlot{
		label:   label,
		values:  values,
		barSize: 0.67,
	}
}

// WithBarSize returns the descriptor with the bar width (plot units) set.
func (d BarsPlot) WithBarSize(size float64) BarsPlot {
	d.barSize = size
	return d
}

// WithShift returns the descriptor with the series X shift set.
func (d BarsPlot) WithShift(shift float64) BarsPlot {
	d.shift = shift
	return d
}

// WithFlags returns the descriptor with bars flags set.
func (d BarsPlot) WithFlags(flags BarsFlags) BarsPlot {
	d.flags = flags
	return d
}

// Label returns the descriptor's label.
func (d BarsPlot) Label() string { return d.label }

// Validate checks the label. Empty values and degenerate bar sizes are
// valid; what they look like is the engine's business.
func (d BarsPlot) Validate() error {
	if !validLabel(d.label) {
		return ErrInvalidLabel
	}
	return nil
}

// Plot issues the native bars call. Invalid descriptors draw nothing.
func (d BarsPlot) Plot(pu *PlotUi) {
	if err := d.Validate(); err != nil {
		if plotVerbose() {
			plotLogger.Debug("bars skipped", "label", d.label, "err", err)
		}
		return
	}
	if len(d.values) == 0 {
		return
	}
	pu.native.PlotBars(pu.ui.ScratchTxt(d.label), d.values,
		int32(len(d.values)), d.barSize, d.shift, d.flags.Bits())
}
