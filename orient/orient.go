// Package orient interprets the Exif Orientation tag
// and applies it to images.
package orient

import (
	"fmt"
	"image"
	"image/draw"
)

// Orientation is the value of the Exif Orientation tag.
type Orientation int

// Orientation values, named by the operation
// that turns the stored image upright.
const (
	Undefined  Orientation = 0
	Normal     Orientation = 1
	FlipH      Orientation = 2
	Rotate180  Orientation = 3
	FlipV      Orientation = 4
	Transpose  Orientation = 5
	Rotate90   Orientation = 6
	Transverse Orientation = 7
	Rotate270  Orientation = 8
)

var names = [...]string{
	Undefined:  "undefined",
	Normal:     "normal",
	FlipH:      "flip horizontal",
	Rotate180:  "rotate 180°",
	FlipV:      "flip vertical",
	Transpose:  "transpose",
	Rotate90:   "rotate 90°",
	Transverse: "transverse",
	Rotate270:  "rotate 270°",
}

func (o Orientation) String() string {
	if o.Valid() || o == Undefined {
		return names[o]
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Valid reports if o is one of the values 1..8.
func (o Orientation) Valid() bool {
	return Normal <= o && o <= Rotate270
}

// IsTranspose reports if applying o swaps
// the width and height of images.
func (o Orientation) IsTranspose() bool {
	return Transpose <= o && o <= Rotate270
}

// Apply returns im turned upright according to o.
//
// It returns a new image for orientations 2..8,
// or im itself otherwise.
func (o Orientation) Apply(im image.Image) image.Image {
	if o < FlipH || o > Rotate270 {
		return im
	}

	var dst *image.RGBA
	if o.IsTranspose() {
		dst = transpose(im)
		o -= 4
	} else {
		dst = asRGBA(im)
	}

	switch o {
	case FlipH:
		flipHorz(dst)
	case Rotate180:
		flipHorz(dst)
		flipVert(dst)
	case FlipV:
		flipVert(dst)
	}
	return dst
}

func asRGBA(src image.Image) *image.RGBA {
	db := src.Bounds().Canon()
	db = db.Sub(db.Min)
	dst := image.NewRGBA(db)
	draw.Draw(dst, db, src, src.Bounds().Min, draw.Src)
	return dst
}

func transpose(src image.Image) *image.RGBA {
	sz := src.Bounds().Size()
	o := src.Bounds().Canon().Min
	dst := image.NewRGBA(image.Rect(0, 0, sz.Y, sz.X))
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			dst.Set(y, x, src.At(o.X+x, o.Y+y))
		}
	}
	return dst
}

func flipHorz(im *image.RGBA) {
	w := im.Rect.Dx()
	for y := 0; y < im.Rect.Dy(); y++ {
		row := im.Pix[y*im.Stride : y*im.Stride+4*w]
		for l, r := 0, 4*(w-1); l < r; l, r = l+4, r-4 {
			for j := 0; j < 4; j++ {
				row[l+j], row[r+j] = row[r+j], row[l+j]
			}
		}
	}
}

func flipVert(im *image.RGBA) {
	w := 4 * im.Rect.Dx()
	tmp := make([]uint8, w)
	for top, bot := 0, im.Rect.Dy()-1; top < bot; top, bot = top+1, bot-1 {
		t := im.Pix[top*im.Stride : top*im.Stride+w]
		b := im.Pix[bot*im.Stride : bot*im.Stride+w]
		copy(tmp, t)
		copy(t, b)
		copy(b, tmp)
	}
}
