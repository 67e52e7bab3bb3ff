package imgui

// Native is the Dear ImGui entry-point surface consumed by this layer.
//
// A production build supplies a cgo-backed implementation; the nativetest
// package supplies a recorder for tests. Building the native engine itself
// (headers, compilation, prebuilt artifacts) is a packaging concern and
// lives outside this module.
//
// Text parameters are NUL-terminated byte views produced by the Ui scratch
// buffer. They alias the buffer and are only valid for the duration of the
// call; implementations must not retain them.
type Native interface {
	// Widgets.
	Bullet()
	BulletText(text []byte)
	Text(text []byte)
	SmallButton(label []byte) bool
	InvisibleButton(strID []byte, size Vec2, flags int32) bool
	ArrowButton(strID []byte, dir int32) bool

	// Disabled scope. BeginDisabled/EndDisabled must balance even when
	// disabled is false; the native side keeps an internal stack.
	BeginDisabled(disabled bool)
	EndDisabled()

	// Item flag stack.
	PushItemFlag(flags int32, enabled bool)
	PopItemFlag()

	// Style color stack.
	PushStyleColor(idx int32, col Vec4)
	PopStyleColor(count int32)

	// Key ownership for the last submitted item.
	SetItemKeyOwner(key int32)
	SetItemKeyOwnerWithFlags(key int32, flags int32)
}
