// Package opengl provides renderer-boundary glue for OpenGL integrations:
// uploading CPU images as GL textures and handing the resulting handles to
// the binding layer. Rendering itself stays with the integration.
package opengl

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"

	"github.com/go-dear/imgui"
)

// NewTexture uploads img as an RGBA GL_TEXTURE_2D and returns its handle
// as an imgui.TextureID. The caller owns the texture and must delete it
// with DeleteTexture once no in-flight frame references it.
//
// Must be called on the thread that owns the GL context.
func NewTexture(img image.Image) (imgui.TextureID, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("opengl: empty image bounds %v", bounds)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) {
		converted := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(converted, converted.Bounds(), img, bounds.Min, draw.Src)
		rgba = converted
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return imgui.TextureID(tex), nil
}

// NewTextureScaled rescales img to w x h before upload. Useful for
// clamping oversized plot images to something the GPU is happy with.
func NewTextureScaled(img image.Image, w, h int) (imgui.TextureID, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("opengl: invalid target size %dx%d", w, h)
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return NewTexture(scaled)
}

// DeleteTexture releases a texture created by NewTexture. Frames that
// already recorded the handle must have been rendered first.
func DeleteTexture(id imgui.TextureID) {
	tex := uint32(id.Raw())
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}
