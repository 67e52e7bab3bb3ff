package imgui

// Vec2 is a 2D vector, field-ordered to match the native ImVec2 layout.
type Vec2 struct {
	X, Y float32
}

// Vec4 is a 4D vector, field-ordered to match the native ImVec4 layout.
// Colors cross the ABI as Vec4 with components in [0,1].
type Vec4 struct {
	X, Y, Z, W float32
}

// RGBA builds a color Vec4 from byte components (0-255).
func RGBA(r, g, b, a uint8) Vec4 {
	return Vec4{
		X: float32(r) / 255,
		Y: float32(g) / 255,
		Z: float32(b) / 255,
		W: float32(a) / 255,
	}
}

// RGBAf builds a color Vec4 from float components, clamped to [0,1].
func RGBAf(r, g, b, a float32) Vec4 {
	return Vec4{
		X: clampf(r, 0, 1),
		Y: clampf(g, 0, 1),
		Z: clampf(b, 0, 1),
		W: clampf(a, 0, 1),
	}
}

// PackRGBA packs a color Vec4 into the native 0xAABBGGRR representation.
func PackRGBA(c Vec4) uint32 {
	r := uint32(clampf(c.X, 0, 1) * 255)
	g := uint32(clampf(c.Y, 0, 1) * 255)
	b := uint32(clampf(c.Z, 0, 1) * 255)
	a := uint32(clampf(c.W, 0, 1) * 255)
	return a<<24 | b<<16 | g<<8 | r
}

// UnpackRGBA expands a packed 0xAABBGGRR color into a Vec4.
func UnpackRGBA(c uint32) Vec4 {
	return RGBA(uint8(c), uint8(c>>8), uint8(c>>16), uint8(c>>24))
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
