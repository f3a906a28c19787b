package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

func CompareImgs(img1, img2 image.Image) error {
	if img1.Bounds() != img2.Bounds() {
		return fmt.Errorf("bounds: %v %v", img1.Bounds(), img2.Bounds())
	}
	n, first := diffPixels(img1, img2)
	if n > 0 {
		c1 := color.RGBAModel.Convert(img1.At(first.X, first.Y))
		c2 := color.RGBAModel.Convert(img2.At(first.X, first.Y))
		return fmt.Errorf("colors: xy=%v: %v %v (nfails: %v)", first, c1, c2, n)
	}
	return nil
}

// Number of pixels in r that differ from c.
func CountNotColor(img image.Image, r image.Rectangle, c color.Color) int {
	c1 := color.RGBAModel.Convert(c)
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) != c1 {
				n++
			}
		}
	}
	return n
}

func DecodePng(b []byte) (image.Image, error) {
	return png.Decode(bytes.NewReader(b))
}

//----------

func diffPixels(img1, img2 image.Image) (int, image.Point) {
	b := img1.Bounds()
	n := 0
	first := image.Point{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c1 := color.RGBAModel.Convert(img1.At(x, y))
			c2 := color.RGBAModel.Convert(img2.At(x, y))
			if c1 != c2 {
				n++
				if n == 1 {
					first = image.Point{x, y}
				}
			}
		}
	}
	return n, first
}
