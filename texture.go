package spritedicer

import "github.com/dantero/spritedicer/internal/model"

// Texture is a rectangular, row-major pixel buffer with a top-left origin:
// pixel (x, y) lives at Pixels[y*Width+x]. Left to right, then top to
// bottom, same as the decoded source image formats it is built from.
type Texture = model.Texture

// NewTexture allocates a fully transparent texture of the given size.
var NewTexture = model.NewTexture
