package imgui

// Direction mirrors ImGuiDir. Used by arrow buttons and similar widgets.
type Direction int32

const (
	DirNone  Direction = -1
	DirLeft  Direction = 0
	DirRight Direction = 1
	DirUp    Direction = 2
	DirDown  Direction = 3
)

// Native returns the raw ImGuiDir value.
func (d Direction) Native() int32 { return int32(d) }

// String returns a debug name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "None"
	}
}

// Key mirrors ImGuiKey named-key values. The constants below are the
// subset this layer needs for key ownership; values come straight from the
// native enumeration (named keys start at 512).
type Key int32

const (
	KeyNone       Key = 0
	KeyTab        Key = 512
	KeyLeftArrow  Key = 513
	KeyRightArrow Key = 514
	KeyUpArrow    Key = 515
	KeyDownArrow  Key = 516
	KeyPageUp     Key = 517
	KeyPageDown   Key = 518
	KeyHome       Key = 519
	KeyEnd        Key = 520
	KeyInsert     Key = 521
	KeyDelete     Key = 522
	KeyBackspace  Key = 523
	KeySpace      Key = 524
	KeyEnter      Key = 525
	KeyEscape     Key = 526
	KeyLeftCtrl   Key = 527
	KeyLeftShift  Key = 528
	KeyLeftAlt    Key = 529
	KeyLeftSuper  Key = 530
	KeyRightCtrl  Key = 531
	KeyRightShift Key = 532
	KeyRightAlt   Key = 533
	KeyRightSuper Key = 534
	KeyMenu       Key = 535
	Key0          Key = 536
	Key1          Key = 537
	Key2          Key = 538
	Key3          Key = 539
	Key4          Key = 540
	Key5          Key = 541
	Key6          Key = 542
	Key7          Key = 543
	Key8          Key = 544
	Key9          Key = 545
	KeyA          Key = 546
	KeyB          Key = 547
	KeyC          Key = 548
	KeyD          Key = 549
	KeyE          Key = 550
	KeyF          Key = 551
	KeyG          Key = 552
	KeyH          Key = 553
	KeyI          Key = 554
	KeyJ          Key = 555
	KeyK          Key = 556
	KeyL          Key = 557
	KeyM          Key = 558
	KeyN          Key = 559
	KeyO          Key = 560
	KeyP          Key = 561
	KeyQ          Key = 562
	KeyR          Key = 563
	KeyS          Key = 564
	KeyT          Key = 565
	KeyU          Key = 566
	KeyV          Key = 567
	KeyW          Key = 568
	KeyX          Key = 569
	KeyY          Key = 570
	KeyZ          Key = 571
	KeyF1         Key = 572
	KeyF2         Key = 573
	KeyF3         Key = 574
	KeyF4         Key = 575
	KeyF5         Key = 576
	KeyF6         Key = 577
	KeyF7         Key = 578
	KeyF8         Key = 579
	KeyF9         Key = 580
	KeyF10        Key = 581
	KeyF11        Key = 582
	KeyF12        Key = 583
)

// Native returns the raw ImGuiKey value.
func (k Key) Native() int32 { return int32(k) }

// KeyFromNative converts a raw ImGuiKey value back to a Key. The
// conversion is bit-preserving; it does not check that the value names a
// declared variant.
func KeyFromNative(v int32) Key { return Key(v) }

// StyleColor mirrors ImGuiCol, identifying one slot in the native style
// color stack.
type StyleColor int32

const (
	ColText                 StyleColor = 0
	ColTextDisabled         StyleColor = 1
	ColWindowBg             StyleColor = 2
	ColChildBg              StyleColor = 3
	ColPopupBg              StyleColor = 4
	ColBorder               StyleColor = 5
	ColBorderShadow         StyleColor = 6
	ColFrameBg              StyleColor = 7
	ColFrameBgHovered       StyleColor = 8
	ColFrameBgActive        StyleColor = 9
	ColTitleBg              StyleColor = 10
	ColTitleBgActive        StyleColor = 11
	ColTitleBgCollapsed     StyleColor = 12
	ColMenuBarBg            StyleColor = 13
	ColScrollbarBg          StyleColor = 14
	ColScrollbarGrab        StyleColor = 15
	ColScrollbarGrabHovered StyleColor = 16
	ColScrollbarGrabActive  StyleColor = 17
	ColCheckMark            StyleColor = 18
	ColSliderGrab           StyleColor = 19
	ColSliderGrabActive     StyleColor = 20
	ColButton               StyleColor = 21
	ColButtonHovered        StyleColor = 22
	ColButtonActive         StyleColor = 23
	ColHeader               StyleColor = 24
	ColHeaderHovered        StyleColor = 25
	ColHeaderActive         StyleColor = 26
	ColSeparator            StyleColor = 27
	ColSeparatorHovered     StyleColor = 28
	ColSeparatorActive      StyleColor = 29
	ColPlotLines            StyleColor = 40
	ColPlotLinesHovered     StyleColor = 41
	ColPlotHistogram        StyleColor = 42
	ColPlotHistogramHovered StyleColor = 43
)

// Native returns the raw ImGuiCol value.
func (c StyleColor) Native() int32 { return int32(c) }

// MouseButton mirrors ImGuiMouseButton.
type MouseButton int32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Native returns the raw ImGuiMouseButton value.
func (b MouseButton) Native() int32 { return int32(b) }
