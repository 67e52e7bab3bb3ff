package imgui

import (
	"errors"
	"fmt"
)

// ErrUnsupported reports a texture-handle conversion from a wrapper type
// whose ABI compatibility cannot be confirmed.
var ErrUnsupported = errors.New("imgui: unsupported texture handle type")

// TextureID is an opaque, renderer-assigned identifier for a GPU image.
// It is pointer-sized on the native side; this layer never owns the GPU
// resource, it only carries the handle into draw calls. The resource must
// outlive every frame that draws it.
type TextureID uintptr

// Raw returns the underlying handle value.
func (t TextureID) Raw() uintptr { return uintptr(t) }

// TextureRef is the small record the native ABI takes for texture
// parameters: the handle plus a reserved auxiliary pointer that this layer
// always leaves nil (the engine fills it only for internally managed
// textures).
type TextureRef struct {
	TexData uintptr // reserved, always 0 from this layer
	TexID   TextureID
}

// Ref packs the handle into the native texture-reference record.
func (t TextureID) Ref() TextureRef {
	return TextureRef{TexData: 0, TexID: t}
}

// ConvertTextureID converts a handle produced by an adjacent binding or
// renderer into a TextureID, preserving the bit pattern. Integer handle
// types are accepted directly; anything else returns ErrUnsupported.
//
// Prefer constructing a TextureID from the raw handle at the renderer
// boundary; this cross-cast exists for interop and may be narrowed over
// time.
func ConvertTextureID(v any) (TextureID, error) {
	switch h := v.(type) {
	case TextureID:
		return h, nil
	case uintptr:
		return TextureID(h), nil
	case uint64:
		return TextureID(h), nil
	case uint32:
		return TextureID(h), nil
	case int:
		if h < 0 {
			return 0, fmt.Errorf("%w: negative handle %d", ErrUnsupported, h)
		}
		return TextureID(h), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}
