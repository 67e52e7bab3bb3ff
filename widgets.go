package imgui

// One-shot widget methods. Each materializes its text through the scratch
// buffer, packs primitive parameters, and forwards to the native call.
// The returned booleans are the native results (clicked, pressed, ...).

// Bullet draws a bullet point.
func (ui *Ui) Bullet() {
	ui.native.Bullet()
}

// BulletText draws a bullet point followed by text.
func (ui *Ui) BulletText(text string) {
	ui.native.BulletText(ui.scratch.txt(text))
}

// Text draws plain text.
func (ui *Ui) Text(text string) {
	ui.native.Text(ui.scratch.txt(text))
}

// SmallButton draws a button without frame padding. Returns true when
// clicked.
func (ui *Ui) SmallButton(label string) bool {
	return ui.native.SmallButton(ui.scratch.txt(label))
}

// InvisibleButton draws a hit-testable region with no visuals. Returns
// true when clicked.
func (ui *Ui) InvisibleButton(strID string, size Vec2) bool {
	return ui.InvisibleButtonFlags(strID, size, ButtonFlagsNone)
}

// InvisibleButtonFlags is InvisibleButton with mouse-button flags.
func (ui *Ui) InvisibleButtonFlags(strID string, size Vec2, flags ButtonFlags) bool {
	return ui.native.InvisibleButton(ui.scratch.txt(strID), size, flags.Bits())
}

// ArrowButton draws a square button with an arrow. Returns true when
// clicked.
func (ui *Ui) ArrowButton(strID string, dir Direction) bool {
	return ui.native.ArrowButton(ui.scratch.txt(strID), dir.Native())
}

// PushButtonRepeat enables or disables repeat behavior for subsequent
// buttons. It is a raw paired call over the item-flag stack; every push
// needs a matching PopButtonRepeat. Prefer PushItemFlag when you want the
// token discipline.
func (ui *Ui) PushButtonRepeat(repeat bool) {
	ui.native.PushItemFlag(ItemFlagsButtonRepeat.Bits(), repeat)
}

// PopButtonRepeat pops the button-repeat item flag.
func (ui *Ui) PopButtonRepeat() {
	ui.native.PopItemFlag()
}

// SetItemKeyOwner marks the last submitted item as the owner of key.
func (ui *Ui) SetItemKeyOwner(key Key) {
	ui.native.SetItemKeyOwner(key.Native())
}

// SetItemKeyOwnerWithFlags is SetItemKeyOwner with input flags.
func (ui *Ui) SetItemKeyOwnerWithFlags(key Key, flags InputFlags) {
	ui.native.SetItemKeyOwnerWithFlags(key.Native(), flags.Bits())
}
