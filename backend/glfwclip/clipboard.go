// Package glfwclip implements imgui.ClipboardProvider over a GLFW window.
// The native default clipboard is compiled out of the engine, so GLFW
// integrations route clipboard traffic through this provider:
//
//	ui := imgui.NewUi(native, imgui.WithClipboard(glfwclip.New(window)))
package glfwclip

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-dear/imgui"
)

// Clipboard reads and writes the system clipboard through a GLFW window.
type Clipboard struct {
	window *glfw.Window
}

var _ imgui.ClipboardProvider = (*Clipboard)(nil)

// New creates a clipboard provider bound to window.
func New(window *glfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

// GetText retrieves text from the system clipboard.
func (c *Clipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText copies text to the system clipboard.
func (c *Clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
