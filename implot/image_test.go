package implot_test

import (
	"errors"
	"testing"

	"github.com/go-dear/imgui"
	"github.com/go-dear/imgui/implot"
)

func TestImagePlotDefaults(t *testing.T) {
	pu, rec := newTestPlotUi(t)

	tex := imgui.TextureID(99)
	implot.NewImagePlot("heatmap", tex,
		implot.PlotPoint{X: 0, Y: 0},
		implot.PlotPoint{X: 10, Y: 10}).Plot(pu)

	call := rec.Last("PlotImage")
	if call == nil {
		t.Fatal("expected PlotImage call")
	}
	ref := call.Args[0].(imgui.TextureRef)
	if ref.TexData != 0 {
		t.Errorf("TexData = %#x, the binding must leave it 0", ref.TexData)
	}
	if ref.TexID != tex {
		t.Errorf("TexID = %v, want %v", ref.TexID, tex)
	}
	if uv0 := call.Args[3].(imgui.Vec2); uv0 != (imgui.Vec2{X: 0, Y: 0}) {
		t.Errorf("uv0 = %v, want {0 0}", uv0)
	}
	if uv1 := call.Args[4].(imgui.Vec2); uv1 != (imgui.Vec2{X: 1, Y: 1}) {
		t.Errorf("uv1 = %v, want {1 1}", uv1)
	}
	if tint := call.Args[5].(imgui.Vec4); tint != imgui.RGBAf(1, 1, 1, 1) {
		t.Errorf("tint = %v, want opaque white", tint)
	}
}

func TestImagePlotCustomUVAndTint(t *testing.T) {
	pu, rec := newTestPlotUi(t)

	uv0 := imgui.Vec2{X: 0.25, Y: 0.25}
	uv1 := imgui.Vec2{X: 0.75, Y: 0.75}
	tint := imgui.RGBAf(1, 0, 0, 0.5)

	implot.NewImagePlot("sub", 1,
		implot.PlotPoint{}, implot.PlotPoint{X: 1, Y: 1}).
		WithUV(uv0, uv1).
		WithTint(tint).
		Plot(pu)

	call := rec.Last("PlotImage")
	if call.Args[3].(imgui.Vec2) != uv0 || call.Args[4].(imgui.Vec2) != uv1 {
		t.Errorf("uvs = %v/%v, want %v/%v", call.Args[3], call.Args[4], uv0, uv1)
	}
	if call.Args[5].(imgui.Vec4) != tint {
		t.Errorf("tint = %v, want %v", call.Args[5], tint)
	}
}

func TestImagePlotDegenerateBoundsStillDraws(t *testing.T) {
	pu, rec := newTestPlotUi(t)

	p := implot.PlotPoint{X: 3, Y: 3}
	implot.NewImagePlot("point", 1, p, p).Plot(pu)

	call := rec.Last("PlotImage")
	if call == nil {
		t.Fatal("degenerate bounds should still reach the native side")
	}
	if call.Args[1].(implot.PlotPoint) != p || call.Args[2].(implot.PlotPoint) != p {
		t.Errorf("bounds = %v/%v, want %v/%v", call.Args[1], call.Args[2], p, p)
	}
}

func TestImagePlotInvalidLabel(t *testing.T) {
	pu, rec := newTestPlotUi(t)

	d := implot.NewImagePlot("a\x00b", 1, implot.PlotPoint{}, implot.PlotPoint{X: 1, Y: 1})
	if err := d.Validate(); !errors.Is(err, implot.ErrInvalidLabel) {
		t.Errorf("Validate = %v, want ErrInvalidLabel", err)
	}
	d.Plot(pu)
	if rec.Count("PlotImage") != 0 {
		t.Error("invalid image descriptor reached the native side")
	}
}

func TestImageFacade(t *testing.T) {
	pu, rec := newTestPlotUi(t)

	if err := pu.Image("tex", 7, implot.PlotPoint{}, implot.PlotPoint{X: 2, Y: 2}); err != nil {
		t.Fatalf("Image: %v", err)
	}
	if rec.Count("PlotImage") != 1 {
		t.Errorf("expected 1 PlotImage, got %d", rec.Count("PlotImage"))
	}
}
