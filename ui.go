package imgui

import (
	"fmt"
	"log/slog"
	"os"
)

// uiLogLevel controls the log level for binding-layer debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var uiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the binding
// layer. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		uiLogLevel.Set(slog.LevelDebug)
	} else {
		uiLogLevel.Set(slog.LevelInfo)
	}
}

// uiLogger is the logger for binding-layer debugging.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))

// Ui is the frame façade: every widget call, scope and text conversion
// goes through it. A Ui is bound to one native context and one thread;
// it owns the scratch buffer and the token stack that keeps the native
// push/pop stacks balanced.
type Ui struct {
	native    Native
	scratch   scratchBuffer
	scopes    []scopeEntry
	scopeSeq  uint64
	frame     uint64
	clipboard ClipboardProvider
}

// UiOption configures a Ui.
type UiOption func(*Ui)

// WithClipboard sets the clipboard provider used by ClipboardText and
// SetClipboardText. The native default clipboard is compiled out, so text
// widgets only get clipboard support through this seam.
func WithClipboard(cp ClipboardProvider) UiOption {
	return func(ui *Ui) { ui.clipboard = cp }
}

// NewUi creates a Ui over the given native surface.
func NewUi(native Native, opts ...UiOption) *Ui {
	if native == nil {
		panic("imgui: NewUi called with nil native surface")
	}
	ui := &Ui{
		native: native,
		scopes: make([]scopeEntry, 0, 8),
	}
	for _, opt := range opts {
		opt(ui)
	}
	return ui
}

// BeginFrame marks the start of a recording frame.
func (ui *Ui) BeginFrame() {
	ui.frame++
}

// EndFrame marks the end of a recording frame. It panics if any scope is
// still open: an unbalanced native stack is a programming error that the
// engine cannot recover from, and the frame boundary is the last place it
// can be caught with a useful message.
func (ui *Ui) EndFrame() {
	if n := len(ui.scopes); n > 0 {
		top := ui.scopes[n-1]
		panic(fmt.Sprintf("imgui: EndFrame with %d open scope(s), innermost %s", n, top.name))
	}
	ui.scratch.reset()
}

// FrameCount returns the number of frames begun on this Ui.
func (ui *Ui) FrameCount() uint64 { return ui.frame }

// ScratchTxt materializes s as NUL-terminated bytes in the Ui's scratch
// buffer. The returned view aliases the buffer and is valid only until
// the next ScratchTxt (or any widget call) on the same Ui. Extension
// packages use this for their own label parameters.
func (ui *Ui) ScratchTxt(s string) []byte {
	return ui.scratch.txt(s)
}

// Native returns the native surface this Ui records into. Extension
// packages use it to reach their own native entry points alongside the
// core ones.
func (ui *Ui) Native() Native { return ui.native }

// ClipboardText returns the system clipboard contents. It returns
// ErrNoClipboard when no provider was configured.
func (ui *Ui) ClipboardText() (string, error) {
	if ui.clipboard == nil {
		return "", ErrNoClipboard
	}
	return ui.clipboard.GetText(), nil
}

// SetClipboardText copies text to the system clipboard. It returns
// ErrNoClipboard when no provider was configured.
func (ui *Ui) SetClipboardText(text string) error {
	if ui.clipboard == nil {
		return ErrNoClipboard
	}
	ui.clipboard.SetText(text)
	return nil
}

func (ui *Ui) verbose() bool {
	return uiLogLevel.Level() <= slog.LevelDebug
}
