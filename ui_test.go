package imgui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-dear/imgui"
	"github.com/go-dear/imgui/nativetest"
)

func newTestUi(t *testing.T) (*imgui.Ui, *nativetest.Recorder) {
	t.Helper()
	rec := nativetest.NewRecorder()
	return imgui.NewUi(rec), rec
}

func TestDisabledScopeBalanced(t *testing.T) {
	ui, rec := newTestUi(t)

	ui.BeginFrame()
	tok := ui.BeginDisabled()
	ui.SmallButton("ok")
	tok.End()
	ui.EndFrame()

	want := []string{"BeginDisabled", "SmallButton", "EndDisabled"}
	got := rec.Names()
	if len(got) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if begin := rec.Last("BeginDisabled"); begin.Args[0] != true {
		t.Errorf("BeginDisabled should receive true, got %v", begin.Args[0])
	}

	button := rec.Last("SmallButton")
	if !bytes.Equal(button.Raw, []byte{'o', 'k', 0}) {
		t.Errorf("button label bytes = %v, want o,k,NUL", button.Raw)
	}
}

func TestDisabledWithCondFalseStillPairs(t *testing.T) {
	ui, rec := newTestUi(t)

	tok := ui.BeginDisabledWithCond(false)
	tok.End()

	if begin := rec.Last("BeginDisabled"); begin.Args[0] != false {
		t.Errorf("BeginDisabled should receive false, got %v", begin.Args[0])
	}
	if n := rec.Count("EndDisabled"); n != 1 {
		t.Errorf("expected exactly 1 EndDisabled, got %d", n)
	}
}

func TestDisabledClosureHelper(t *testing.T) {
	ui, rec := newTestUi(t)

	ui.Disabled(true, func() {
		ui.BulletText("locked")
	})

	if rec.Count("BeginDisabled") != 1 || rec.Count("EndDisabled") != 1 {
		t.Errorf("expected 1 begin and 1 end, got %d/%d",
			rec.Count("BeginDisabled"), rec.Count("EndDisabled"))
	}
	if ui.OpenScopes() != 0 {
		t.Errorf("expected no open scopes, got %d", ui.OpenScopes())
	}
}

func TestNestedScopesBalanceOnPanic(t *testing.T) {
	ui, rec := newTestUi(t)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic to propagate")
			}
		}()

		outer := ui.BeginDisabled()
		defer outer.End()
		inner := ui.BeginDisabledWithCond(false)
		defer inner.End()
		panic("frame aborted")
	}()

	if n := rec.Count("EndDisabled"); n != 2 {
		t.Fatalf("expected 2 EndDisabled on unwind, got %d", n)
	}
	// LIFO order: the two EndDisabled calls come after both begins.
	names := rec.Names()
	if names[len(names)-1] != "EndDisabled" || names[len(names)-2] != "EndDisabled" {
		t.Errorf("expected trailing EndDisabled pair, got %v", names)
	}
	if ui.OpenScopes() != 0 {
		t.Errorf("expected no open scopes after unwind, got %d", ui.OpenScopes())
	}
}

func TestTokenDoubleEndPanics(t *testing.T) {
	ui, _ := newTestUi(t)

	tok := ui.BeginDisabled()
	tok.End()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on second End")
		}
	}()
	tok.End()
}

func TestOutOfOrderEndPanics(t *testing.T) {
	ui, _ := newTestUi(t)

	outer := ui.BeginDisabled()
	inner := ui.PushStyleColor(imgui.ColButton, imgui.RGBA(255, 0, 0, 255))

	defer func() {
		if recover() == nil {
			t.Error("expected panic when ending outer before inner")
		}
		inner.End()
	}()
	outer.End()
}

func TestEndFrameWithOpenScopePanics(t *testing.T) {
	ui, _ := newTestUi(t)

	ui.BeginFrame()
	ui.BeginDisabled()

	defer func() {
		if recover() == nil {
			t.Error("expected EndFrame to panic with an open scope")
		}
	}()
	ui.EndFrame()
}

func TestStyleColorScope(t *testing.T) {
	ui, rec := newTestUi(t)

	ui.StyleScope(imgui.ColText, imgui.RGBAf(1, 0, 0, 1), func() {
		ui.Text("red")
	})

	push := rec.Last("PushStyleColor")
	if push == nil {
		t.Fatal("expected PushStyleColor call")
	}
	if push.Args[0] != imgui.ColText.Native() {
		t.Errorf("pushed slot %v, want %v", push.Args[0], imgui.ColText.Native())
	}
	pop := rec.Last("PopStyleColor")
	if pop == nil || pop.Args[0] != int32(1) {
		t.Errorf("expected PopStyleColor(1), got %+v", pop)
	}
}

func TestPushItemFlagToken(t *testing.T) {
	ui, rec := newTestUi(t)

	tok := ui.PushItemFlag(imgui.ItemFlagsNoNav, true)
	tok.End()

	push := rec.Last("PushItemFlag")
	if push.Args[0] != imgui.ItemFlagsNoNav.Bits() || push.Args[1] != true {
		t.Errorf("PushItemFlag args = %v", push.Args)
	}
	if rec.Count("PopItemFlag") != 1 {
		t.Errorf("expected 1 PopItemFlag, got %d", rec.Count("PopItemFlag"))
	}
}

func TestButtonRepeatPair(t *testing.T) {
	ui, rec := newTestUi(t)

	ui.PushButtonRepeat(true)
	ui.SmallButton("hold")
	ui.PopButtonRepeat()

	push := rec.Last("PushItemFlag")
	if push.Args[0] != imgui.ItemFlagsButtonRepeat.Bits() {
		t.Errorf("expected ButtonRepeat flag, got %v", push.Args[0])
	}
	if rec.Count("PopItemFlag") != 1 {
		t.Errorf("expected 1 PopItemFlag, got %d", rec.Count("PopItemFlag"))
	}
}

func TestItemKeyOwner(t *testing.T) {
	ui, rec := newTestUi(t)

	ui.SmallButton("grab")
	ui.SetItemKeyOwner(imgui.KeyEnter)
	ui.SetItemKeyOwnerWithFlags(imgui.KeySpace, imgui.InputFlagsLockThisFrame)

	plain := rec.Last("SetItemKeyOwner")
	if plain.Args[0] != imgui.KeyEnter.Native() {
		t.Errorf("key = %v, want %v", plain.Args[0], imgui.KeyEnter.Native())
	}
	flagged := rec.Last("SetItemKeyOwnerWithFlags")
	if flagged.Args[0] != imgui.KeySpace.Native() ||
		flagged.Args[1] != imgui.InputFlagsLockThisFrame.Bits() {
		t.Errorf("flagged args = %v", flagged.Args)
	}
}

func TestWidgetCalls(t *testing.T) {
	ui, rec := newTestUi(t)
	rec.ButtonResult = true

	ui.Bullet()
	ui.BulletText("point")
	if !ui.SmallButton("go") {
		t.Error("SmallButton should return the native result")
	}
	if !ui.InvisibleButton("hit", imgui.Vec2{X: 10, Y: 10}) {
		t.Error("InvisibleButton should return the native result")
	}
	if !ui.ArrowButton("left", imgui.DirLeft) {
		t.Error("ArrowButton should return the native result")
	}

	arrow := rec.Last("ArrowButton")
	if arrow.Args[0] != imgui.DirLeft.Native() {
		t.Errorf("arrow dir = %v, want %v", arrow.Args[0], imgui.DirLeft.Native())
	}
	inv := rec.Last("InvisibleButton")
	if inv.Args[0] != (imgui.Vec2{X: 10, Y: 10}) {
		t.Errorf("invisible button size = %v", inv.Args[0])
	}
}

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) GetText() string     { return c.text }
func (c *fakeClipboard) SetText(text string) { c.text = text }

func TestClipboard(t *testing.T) {
	rec := nativetest.NewRecorder()
	cb := &fakeClipboard{}
	ui := imgui.NewUi(rec, imgui.WithClipboard(cb))

	if err := ui.SetClipboardText("copied"); err != nil {
		t.Fatalf("SetClipboardText: %v", err)
	}
	got, err := ui.ClipboardText()
	if err != nil {
		t.Fatalf("ClipboardText: %v", err)
	}
	if got != "copied" {
		t.Errorf("clipboard = %q, want %q", got, "copied")
	}
}

func TestClipboardMissingProvider(t *testing.T) {
	ui, _ := newTestUi(t)

	if _, err := ui.ClipboardText(); !errors.Is(err, imgui.ErrNoClipboard) {
		t.Errorf("expected ErrNoClipboard, got %v", err)
	}
	if err := ui.SetClipboardText("x"); !errors.Is(err, imgui.ErrNoClipboard) {
		t.Errorf("expected ErrNoClipboard, got %v", err)
	}
}
