package imgui_test

import (
	"testing"

	"github.com/go-dear/imgui"
	"github.com/go-dear/imgui/nativetest"
)

func TestButtonFlagsAlgebra(t *testing.T) {
	a := imgui.ButtonFlagsMouseButtonLeft
	b := imgui.ButtonFlagsMouseButtonRight

	if got := (a | b).Bits(); got != a.Bits()|b.Bits() {
		t.Errorf("Bits(a|b) = %#x, want %#x", got, a.Bits()|b.Bits())
	}
	if !(a | b).Has(a) || !(a | b).Has(b) {
		t.Error("union should contain both members")
	}
	if a.Has(b) {
		t.Error("left should not contain right")
	}
	if imgui.ButtonFlagsNone.Bits() != 0 {
		t.Errorf("None.Bits() = %#x, want 0", imgui.ButtonFlagsNone.Bits())
	}
	// Every declared set contains the empty set.
	if !a.Has(imgui.ButtonFlagsNone) {
		t.Error("any set should contain None")
	}
}

func TestButtonFlagsMaskUndeclaredBits(t *testing.T) {
	stray := imgui.ButtonFlagsMouseButtonMiddle | imgui.ButtonFlags(1<<17)
	if got := stray.Bits(); got != imgui.ButtonFlagsMouseButtonMiddle.Bits() {
		t.Errorf("Bits() = %#x, undeclared bit survived", got)
	}
}

func TestButtonFlagsRoundTrip(t *testing.T) {
	rec := nativetest.NewRecorder()
	ui := imgui.NewUi(rec)

	flags := imgui.ButtonFlagsMouseButtonLeft | imgui.ButtonFlagsMouseButtonMiddle
	ui.InvisibleButtonFlags("canvas", imgui.Vec2{X: 100, Y: 50}, flags)

	call := rec.Last("InvisibleButton")
	if call == nil {
		t.Fatal("expected InvisibleButton call")
	}
	if got := call.Args[1].(int32); got != flags.Bits() {
		t.Errorf("native flags = %#x, want %#x", got, flags.Bits())
	}
	if back := imgui.ButtonFlags(call.Args[1].(int32)); !back.Has(flags) || back != flags {
		t.Errorf("round-tripped flags = %#x, want %#x", back, flags)
	}
}

func TestItemFlagsMask(t *testing.T) {
	stray := imgui.ItemFlagsButtonRepeat | imgui.ItemFlags(1<<30)
	if got := stray.Bits(); got != imgui.ItemFlagsButtonRepeat.Bits() {
		t.Errorf("Bits() = %#x, undeclared bit survived", got)
	}
	if !stray.Has(imgui.ItemFlagsButtonRepeat) {
		t.Error("Has should see the declared bit")
	}
}

func TestInputFlagsValues(t *testing.T) {
	cases := []struct {
		flags imgui.InputFlags
		want  int32
	}{
		{imgui.InputFlagsNone, 0},
		{imgui.InputFlagsRepeat, 1 << 0},
		{imgui.InputFlagsLockThisFrame, 1 << 20},
		{imgui.InputFlagsLockUntilRelease, 1 << 21},
	}
	for _, tc := range cases {
		if got := tc.flags.Bits(); got != tc.want {
			t.Errorf("Bits(%#x) = %#x, want %#x", int32(tc.flags), got, tc.want)
		}
	}
}

func TestDirectionValues(t *testing.T) {
	if imgui.DirNone.Native() != -1 || imgui.DirDown.Native() != 3 {
		t.Errorf("direction values off: None=%d Down=%d",
			imgui.DirNone.Native(), imgui.DirDown.Native())
	}
	if imgui.DirLeft.String() != "Left" {
		t.Errorf("DirLeft.String() = %q", imgui.DirLeft.String())
	}
}

func TestKeyRoundTrip(t *testing.T) {
	keys := []imgui.Key{imgui.KeyTab, imgui.KeySpace, imgui.KeyEnter, imgui.KeyZ, imgui.KeyF12}
	for _, k := range keys {
		if back := imgui.KeyFromNative(k.Native()); back != k {
			t.Errorf("KeyFromNative(%d) = %d, want %d", k.Native(), back, k)
		}
	}
	if imgui.KeyTab.Native() != 512 {
		t.Errorf("KeyTab = %d, named keys start at 512", imgui.KeyTab.Native())
	}
}

func TestPackUnpackRGBA(t *testing.T) {
	c := imgui.RGBA(0x12, 0x34, 0x56, 0x78)
	packed := imgui.PackRGBA(c)
	if packed != 0x78563412 {
		t.Errorf("PackRGBA = %#08x, want 0x78563412", packed)
	}
	back := imgui.UnpackRGBA(packed)
	if back != c {
		t.Errorf("UnpackRGBA(PackRGBA(c)) = %v, want %v", back, c)
	}
}

func TestRGBAfClamps(t *testing.T) {
	c := imgui.RGBAf(-0.5, 1.5, 0.25, 2)
	want := imgui.Vec4{X: 0, Y: 1, Z: 0.25, W: 1}
	if c != want {
		t.Errorf("RGBAf = %v, want %v", c, want)
	}
}
