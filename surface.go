package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the drawing target the field renders onto. The demo backs it
// with an offscreen ebiten image; tests back it with a recorder.
type Surface interface {
	Clear()
	SetSize(width, height int)
	FillCircle(x, y, radius float64, clr color.RGBA)
}

// imageSurface draws onto an offscreen ebiten image that the host composites
// over its own frame.
type imageSurface struct {
	img *ebiten.Image
}

func newImageSurface(width, height int) *imageSurface {
	return &imageSurface{img: ebiten.NewImage(width, height)}
}

func (s *imageSurface) Clear() {
	s.img.Clear()
}

func (s *imageSurface) SetSize(width, height int) {
	b := s.img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(width, height)
}

func (s *imageSurface) FillCircle(x, y, radius float64, clr color.RGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), clr, true)
}

// Image returns the backing image for compositing.
func (s *imageSurface) Image() *ebiten.Image {
	return s.img
}
