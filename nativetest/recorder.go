// Package nativetest provides a recording implementation of the native
// call surfaces for tests. The recorder notes every call in order, copies
// transient byte views so assertions can run after the scratch buffer has
// been rewritten, and lets tests script the boolean results of the native
// side (button clicks, plot opening).
package nativetest

import (
	"github.com/go-dear/imgui"
	"github.com/go-dear/imgui/implot"
)

// Call is one recorded native call.
type Call struct {
	Name string

	// Text is the decoded label/text parameter, without the terminator.
	// Empty for calls that take no text.
	Text string

	// Raw is a copy of the exact bytes handed to the native side,
	// including the terminating NUL.
	Raw []byte

	// Args holds the remaining parameters in declaration order. Slices
	// are copied at call time.
	Args []any
}

// Recorder implements imgui.Native and implot.Native.
type Recorder struct {
	CallLog []Call

	// ButtonResult is returned by every button call.
	ButtonResult bool

	// PlotOpen is returned by BeginPlot.
	PlotOpen bool
}

// NewRecorder returns a recorder whose plots open by default.
func NewRecorder() *Recorder {
	return &Recorder{PlotOpen: true}
}

var (
	_ imgui.Native  = (*Recorder)(nil)
	_ implot.Native = (*Recorder)(nil)
)

// Reset clears the call log.
func (r *Recorder) Reset() { r.CallLog = r.CallLog[:0] }

// Names returns the recorded call names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.CallLog))
	for i, c := range r.CallLog {
		names[i] = c.Name
	}
	return names
}

// Count returns how many calls with the given name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.CallLog {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call with the given name, or nil.
func (r *Recorder) Last(name string) *Call {
	for i := len(r.CallLog) - 1; i >= 0; i-- {
		if r.CallLog[i].Name == name {
			return &r.CallLog[i]
		}
	}
	return nil
}

func (r *Recorder) record(name string, args ...any) {
	r.CallLog = append(r.CallLog, Call{Name: name, Args: args})
}

func (r *Recorder) recordText(name string, text []byte, args ...any) {
	raw := append([]byte(nil), text...)
	decoded := raw
	if n := len(decoded); n > 0 && decoded[n-1] == 0 {
		decoded = decoded[:n-1]
	}
	r.CallLog = append(r.CallLog, Call{
		Name: name,
		Text: string(decoded),
		Raw:  raw,
		Args: args,
	})
}

func copyF64(s []float64) []float64 { return append([]float64(nil), s...) }

// imgui.Native

func (r *Recorder) Bullet()                { r.record("Bullet") }
func (r *Recorder) BulletText(text []byte) { r.recordText("BulletText", text) }
func (r *Recorder) Text(text []byte)       { r.recordText("Text", text) }

func (r *Recorder) SmallButton(label []byte) bool {
	r.recordText("SmallButton", label)
	return r.ButtonResult
}

func (r *Recorder) InvisibleButton(strID []byte, size imgui.Vec2, flags int32) bool {
	r.recordText("InvisibleButton", strID, size, flags)
	return r.ButtonResult
}

func (r *Recorder) ArrowButton(strID []byte, dir int32) bool {
	r.recordText("ArrowButton", strID, dir)
	return r.ButtonResult
}

func (r *Recorder) BeginDisabled(disabled bool) { r.record("BeginDisabled", disabled) }
func (r *Recorder) EndDisabled()                { r.record("EndDisabled") }

func (r *Recorder) PushItemFlag(flags int32, enabled bool) {
	r.record("PushItemFlag", flags, enabled)
}
func (r *Recorder) PopItemFlag() { r.record("PopItemFlag") }

func (r *Recorder) PushStyleColor(idx int32, col imgui.Vec4) {
	r.record("PushStyleColor", idx, col)
}
func (r *Recorder) PopStyleColor(count int32) { r.record("PopStyleColor", count) }

func (r *Recorder) SetItemKeyOwner(key int32) { r.record("SetItemKeyOwner", key) }
func (r *Recorder) SetItemKeyOwnerWithFlags(key int32, flags int32) {
	r.record("SetItemKeyOwnerWithFlags", key, flags)
}

// implot.Native

func (r *Recorder) BeginPlot(title []byte, size imgui.Vec2, flags int32) bool {
	r.recordText("BeginPlot", title, size, flags)
	return r.PlotOpen
}

func (r *Recorder) EndPlot() { r.record("EndPlot") }

func (r *Recorder) PlotScatter(label []byte, xs, ys []float64, count int32, flags, offset, stride int32) {
	r.recordText("PlotScatter", label, copyF64(xs), copyF64(ys), count, flags, offset, stride)
}

func (r *Recorder) PlotLine(label []byte, xs, ys []float64, count int32, flags, offset, stride int32) {
	r.recordText("PlotLine", label, copyF64(xs), copyF64(ys), count, flags, offset, stride)
}

func (r *Recorder) PlotBars(label []byte, values []float64, count int32, barSize, shift float64, flags int32) {
	r.recordText("PlotBars", label, copyF64(values), count, barSize, shift, flags)
}

func (r *Recorder) PlotImage(label []byte, tex imgui.TextureRef, boundsMin, boundsMax implot.PlotPoint, uv0, uv1 imgui.Vec2, tint imgui.Vec4, flags int32) {
	r.recordText("PlotImage", label, tex, boundsMin, boundsMax, uv0, uv1, tint, flags)
}

func (r *Recorder) PlotText(text []byte, x, y float64, pixOffset imgui.Vec2, flags int32) {
	r.recordText("PlotText", text, x, y, pixOffset, flags)
}

func (r *Recorder) PlotDummy(label []byte, flags int32) {
	r.recordText("PlotDummy", label, flags)
}
