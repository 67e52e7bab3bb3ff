package implot

import "github.com/go-dear/imgui"

// ImagePlot draws a texture between two plot-space corners. UVs default
// to the full texture and the tint defaults to opaque white. Degenerate
// bounds (min == max) are passed through; the visual outcome is the
// engine's responsibility.
type ImagePlot struct {
	label     string
	tex       imgui.TextureID
	boundsMin PlotPoint
	boundsMax PlotPoint
	uv0, uv1  imgui.Vec2
	tint      imgui.Vec4
	flags     ImageFlags
}

// NewImagePlot creates an image descriptor with default UVs and tint.
func NewImagePlot(label string, tex imgui.TextureID, boundsMin, boundsMax PlotPoint) ImagePlot {
	return ImagePlot{
		label:     label,
		tex:       tex,
		boundsMin: boundsMin,
		boundsMax: boundsMax,
		uv0:       imgui.Vec2{X: 0, Y: 0},
		uv1:       imgui.Vec2{X: 1, Y: 1},
		tint:      imgui.RGBAf(1, 1, 1, 1),
	}
}

// WithUV returns the descriptor with explicit texture coordinates.
func (d ImagePlot) WithUV(uv0, uv1 imgui.Vec2) ImagePlot {
	d.uv0 = uv0
	d.uv1 = uv1
	return d
}

// WithTint returns the descriptor with a tint color.
func (d ImagePlot) WithTint(tint imgui.Vec4) ImagePlot {
	d.tint = tint
	return d
}

// WithFlags returns the descriptor with image flags set.
func (d ImagePlot) WithFlags(flags ImageFlags) ImagePlot {
	d.flags = flags
	return d
}

// Label returns the descriptor's label.
func (d ImagePlot) Label() string { return d.label }

// Validate checks the label; there is nothing else to get wrong.
func (d ImagePlot) Validate() error {
	if !validLabel(d.label) {
		return ErrInvalidLabel
	}
	return nil
}

// Plot packs the texture reference and issues the native image call.
func (d ImagePlot) Plot(pu *PlotUi) {
	if err := d.Validate(); err != nil {
		if plotVerbose() {
			plotLogger.Debug("image skipped", "label", d.label, "err", err)
		}
		return
	}
	pu.native.PlotImage(pu.ui.ScratchTxt(d.label), d.tex.Ref(),
		d.boundsMin, d.boundsMax, d.uv0, d.uv1, d.tint, d.flags.Bits())
}
