package imgui

// Flag sets are transparent int32 bitmasks matching the native flag width.
// The usual set algebra comes from the built-in operators (|, &, ^, &^);
// each type adds Has for containment and Bits for the masked native value.
// Bits clears anything outside the declared constants so that stray bits
// can never reach the native side.

// ButtonFlags mirrors ImGuiButtonFlags for invisible buttons.
type ButtonFlags int32

const (
	ButtonFlagsNone              ButtonFlags = 0
	ButtonFlagsMouseButtonLeft   ButtonFlags = 1 << 0
	ButtonFlagsMouseButtonRight  ButtonFlags = 1 << 1
	ButtonFlagsMouseButtonMiddle ButtonFlags = 1 << 2
)

const buttonFlagsMask = ButtonFlagsMouseButtonLeft |
	ButtonFlagsMouseButtonRight |
	ButtonFlagsMouseButtonMiddle

// Has reports whether every bit of other is set in f.
func (f ButtonFlags) Has(other ButtonFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f ButtonFlags) Bits() int32 { return int32(f & buttonFlagsMask) }

// ItemFlags mirrors ImGuiItemFlags, pushed with Ui.PushItemFlag.
type ItemFlags int32

const (
	ItemFlagsNone         ItemFlags = 0
	ItemFlagsNoTabStop    ItemFlags = 1 << 0
	ItemFlagsButtonRepeat ItemFlags = 1 << 1
	ItemFlagsDisabled     ItemFlags = 1 << 2
	ItemFlagsNoNav        ItemFlags = 1 << 3
	ItemFlagsAllowOverlap ItemFlags = 1 << 9
)

const itemFlagsMask = ItemFlagsNoTabStop |
	ItemFlagsButtonRepeat |
	ItemFlagsDisabled |
	ItemFlagsNoNav |
	ItemFlagsAllowOverlap

// Has reports whether every bit of other is set in f.
func (f ItemFlags) Has(other ItemFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f ItemFlags) Bits() int32 { return int32(f & itemFlagsMask) }

// InputFlags mirrors ImGuiInputFlags for key-ownership calls.
type InputFlags int32

const (
	InputFlagsNone             InputFlags = 0
	InputFlagsRepeat           InputFlags = 1 << 0
	InputFlagsLockThisFrame    InputFlags = 1 << 20
	InputFlagsLockUntilRelease InputFlags = 1 << 21
)

const inputFlagsMask = InputFlagsRepeat |
	InputFlagsLockThisFrame |
	InputFlagsLockUntilRelease

// Has reports whether every bit of other is set in f.
func (f InputFlags) Has(other InputFlags) bool { return f&other == other }

// Bits returns the native flag value with undeclared bits cleared.
func (f InputFlags) Bits() int32 { return int32(f & inputFlagsMask) }
