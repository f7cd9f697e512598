package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/texquad"
)

// UploadTexture uploads raw interleaved RGB pixels as an 8-bit-per-channel
// 2D texture at mip level 0 with linear min/mag filtering. The pixel slice
// must hold width*height*texquad.BytesPerPixel bytes, as produced by
// texquad.ReadRawRGB.
func UploadTexture(pixels []byte, width, height int) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(width), int32(height), 0,
		gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	return tex
}

// BindTextureUnit0 points the program's "Texture" sampler at texture unit 0
// and binds the given texture there. A shader without that uniform yields
// the -1 sentinel from GetUniformLocation; Uniform1i on -1 is a silent
// no-op, matching the unvalidated lookup of the original demo.
func BindTextureUnit0(program, tex uint32) {
	loc := gl.GetUniformLocation(program, gl.Str("Texture\x00"))
	gl.Uniform1i(loc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

// DeleteTexture releases a previously uploaded texture.
func DeleteTexture(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}
