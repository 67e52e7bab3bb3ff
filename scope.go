package imgui

import "fmt"

// scopeEntry is one open native scope on the Ui's token stack. The stack
// only mirrors what the native engine has open; it never reorders or
// replaces entries, it exists to catch misuse before the native stacks
// unbalance.
type scopeEntry struct {
	name string
	seq  uint64
}

// BeginScope records an open native scope and returns its sequence number.
// Extension packages (implot and friends) call this from their begin
// factories; core tokens use it internally.
func (ui *Ui) BeginScope(name string) uint64 {
	ui.scopeSeq++
	ui.scopes = append(ui.scopes, scopeEntry{name: name, seq: ui.scopeSeq})
	if ui.verbose() {
		uiLogger.Debug("scope opened", "scope", name, "seq", ui.scopeSeq, "depth", len(ui.scopes))
	}
	return ui.scopeSeq
}

// EndScope closes the scope identified by seq. Scopes close strictly LIFO;
// closing out of order or twice panics, because the native stacks would be
// corrupted past this point.
func (ui *Ui) EndScope(name string, seq uint64) {
	n := len(ui.scopes)
	if n == 0 {
		panic(fmt.Sprintf("imgui: %s scope ended twice or after EndFrame", name))
	}
	top := ui.scopes[n-1]
	if top.seq != seq || top.name != name {
		panic(fmt.Sprintf("imgui: %s scope ended out of order (innermost open scope is %s)", name, top.name))
	}
	ui.scopes = ui.scopes[:n-1]
	if ui.verbose() {
		uiLogger.Debug("scope closed", "scope", name, "depth", len(ui.scopes))
	}
}

// OpenScopes returns the number of scopes currently open on this Ui.
func (ui *Ui) OpenScopes() int { return len(ui.scopes) }

const (
	scopeDisabled   = "Disabled"
	scopeStyleColor = "StyleColor"
	scopeItemFlag   = "ItemFlag"
	scopeTheme      = "Theme"
)

// DisabledToken tracks a disabled scope begun with BeginDisabled. End must
// run exactly once; defer it immediately after the begin call.
type DisabledToken struct {
	ui    *Ui
	seq   uint64
	ended bool
}

// BeginDisabled disables all subsequent items until the token is ended.
func (ui *Ui) BeginDisabled() *DisabledToken {
	return ui.BeginDisabledWithCond(true)
}

// BeginDisabledWithCond begins a conditionally disabled scope. The token
// is returned and must be ended even when disabled is false: the native
// side pushes an entry on its internal stack regardless of the flag.
func (ui *Ui) BeginDisabledWithCond(disabled bool) *DisabledToken {
	ui.native.BeginDisabled(disabled)
	return &DisabledToken{ui: ui, seq: ui.BeginScope(scopeDisabled)}
}

// End emits the native EndDisabled call.
func (t *DisabledToken) End() {
	if t.ended {
		panic("imgui: DisabledToken ended twice")
	}
	t.ui.EndScope(scopeDisabled, t.seq)
	t.ended = true
	t.ui.native.EndDisabled()
}

// Disabled runs fn inside a disabled scope. The end call is paired via
// defer and runs even if fn panics.
func (ui *Ui) Disabled(disabled bool, fn func()) {
	tok := ui.BeginDisabledWithCond(disabled)
	defer tok.End()
	fn()
}

// StyleColorToken tracks one pushed style color.
type StyleColorToken struct {
	ui    *Ui
	seq   uint64
	ended bool
}

// PushStyleColor overrides one style color until the token is ended.
func (ui *Ui) PushStyleColor(idx StyleColor, col Vec4) *StyleColorToken {
	ui.native.PushStyleColor(idx.Native(), col)
	return &StyleColorToken{ui: ui, seq: ui.BeginScope(scopeStyleColor)}
}

// End pops the pushed style color.
func (t *StyleColorToken) End() {
	if t.ended {
		panic("imgui: StyleColorToken ended twice")
	}
	t.ui.EndScope(scopeStyleColor, t.seq)
	t.ended = true
	t.ui.native.PopStyleColor(1)
}

// StyleScope runs fn with one style color overridden, popping it on exit.
func (ui *Ui) StyleScope(idx StyleColor, col Vec4, fn func()) {
	tok := ui.PushStyleColor(idx, col)
	defer tok.End()
	fn()
}

// ItemFlagToken tracks one pushed item flag.
type ItemFlagToken struct {
	ui    *Ui
	seq   uint64
	ended bool
}

// PushItemFlag applies an item flag to subsequent items until the token is
// ended. Undeclared flag bits are dropped before they reach the native
// side.
func (ui *Ui) PushItemFlag(flags ItemFlags, enabled bool) *ItemFlagToken {
	ui.native.PushItemFlag(flags.Bits(), enabled)
	return &ItemFlagToken{ui: ui, seq: ui.BeginScope(scopeItemFlag)}
}

// End pops the pushed item flag.
func (t *ItemFlagToken) End() {
	if t.ended {
		panic("imgui: ItemFlagToken ended twice")
	}
	t.ui.EndScope(scopeItemFlag, t.seq)
	t.ended = true
	t.ui.native.PopItemFlag()
}
