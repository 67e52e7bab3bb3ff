package imgui_test

import (
	"errors"
	"testing"

	"github.com/go-dear/imgui"
)

func TestTextureRefLeavesAuxNil(t *testing.T) {
	id := imgui.TextureID(42)
	ref := id.Ref()
	if ref.TexData != 0 {
		t.Errorf("TexData = %#x, this layer must leave it 0", ref.TexData)
	}
	if ref.TexID != id {
		t.Errorf("TexID = %v, want %v", ref.TexID, id)
	}
}

func TestConvertTextureID(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want imgui.TextureID
	}{
		{"TextureID", imgui.TextureID(7), 7},
		{"uintptr", uintptr(8), 8},
		{"uint64", uint64(9), 9},
		{"uint32", uint32(10), 10},
		{"int", 11, 11},
	}
	for _, tc := range cases {
		got, err := imgui.ConvertTextureID(tc.in)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestConvertTextureIDUnsupported(t *testing.T) {
	if _, err := imgui.ConvertTextureID("not a handle"); !errors.Is(err, imgui.ErrUnsupported) {
		t.Errorf("string handle: expected ErrUnsupported, got %v", err)
	}
	if _, err := imgui.ConvertTextureID(-1); !errors.Is(err, imgui.ErrUnsupported) {
		t.Errorf("negative int: expected ErrUnsupported, got %v", err)
	}
}
