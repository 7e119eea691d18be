package spritedicer

import "github.com/dantero/spritedicer/internal/model"

// Pixel is a single RGBA sample with 8-bit channels. It is an immutable
// value; comparing two Pixels with == compares their channel bytes.
type Pixel = model.Pixel

// Transparent is the default pixel value used for unused atlas regions.
// Samples outside a source texture are not transparent: Texture.At clamps
// them to the nearest edge pixel.
var Transparent = model.Transparent
