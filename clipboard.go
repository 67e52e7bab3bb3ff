package imgui

import "errors"

// ErrNoClipboard reports a clipboard operation on a Ui that has no
// provider configured.
var ErrNoClipboard = errors.New("imgui: no clipboard provider configured")

// ClipboardProvider abstracts system clipboard access. The native default
// clipboard is compiled out of the engine, so integrations supply their
// own (see backend/glfwclip for a GLFW-backed one).
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard. Returns the
	// empty string if the clipboard is empty or holds non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}
