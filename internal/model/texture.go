package model

// Texture is a rectangular, row-major pixel buffer with a top-left origin:
// pixel (x, y) lives at Pixels[y*Width+x]. Left to right, then top to
// bottom, same as the decoded source image formats it is built from.
type Texture struct {
	Width  uint32
	Height uint32
	Pixels []Pixel
}

// NewTexture allocates a fully transparent texture of the given size.
func NewTexture(width, height uint32) Texture {
	return Texture{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, width*height),
	}
}

// At returns the pixel at (x, y), clamped to the texture bounds on both
// axes. This is the "border clamp" sampling policy used throughout dicing:
// requests outside the texture repeat the nearest edge pixel.
func (t Texture) At(x, y int32) Pixel {
	cx := clamp(x, int32(t.Width)-1)
	cy := clamp(y, int32(t.Height)-1)
	return t.Pixels[int(cx)+int(t.Width)*int(cy)]
}

func clamp(n int32, max int32) uint32 {
	switch {
	case n < 0:
		return 0
	case n > max:
		return uint32(max)
	default:
		return uint32(n)
	}
}
