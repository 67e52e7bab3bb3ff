// Example demonstrates the binding API without a GPU: it records a frame
// against the test double and prints the native call stream. The same code
// runs unchanged against a real engine-backed Native surface.
//
//	go run ./example/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-dear/imgui"
	"github.com/go-dear/imgui/implot"
	"github.com/go-dear/imgui/nativetest"
)

const themeYAML = `
name: midnight
colors:
  Text: "#e6e6e6"
  WindowBg: "#101418"
  Button: "#20304080"
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	theme, err := imgui.LoadTheme(strings.NewReader(themeYAML))
	if err != nil {
		return err
	}

	rec := nativetest.NewRecorder()
	ui := imgui.NewUi(rec)
	pu := implot.New(ui, rec)

	ui.BeginFrame()
	ui.Themed(theme, func() {
		ui.Text("readings")
		ui.Disabled(true, func() {
			ui.SmallButton("recalibrate")
		})

		pu.PlotScope("sensor", imgui.Vec2{X: 400, Y: 300}, implot.PlotFlagsNone, func() {
			if err := pu.Scatter("samples", []float64{0, 1, 2}, []float64{3.1, 2.7, 3.4}); err != nil {
				fmt.Fprintln(os.Stderr, "scatter:", err)
			}
			if err := pu.Bars("counts", []float64{4, 9, 2}); err != nil {
				fmt.Fprintln(os.Stderr, "bars:", err)
			}
			pu.Text("peak", 1, 9)
		})
	})
	ui.EndFrame()

	for _, call := range rec.CallLog {
		if call.Text != "" {
			fmt.Printf("%-16s %q\n", call.Name, call.Text)
			continue
		}
		fmt.Println(call.Name)
	}
	return nil
}
