package widgets

import (
	"errors"
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"gocv.io/x/gocv"

	"gwen/internal/layout"
)

var ErrImageRead = errors.New("image could not be read")

// Image shows a picture file scaled to fit a box, keeping its aspect ratio.
type Image struct {
	base
	img *canvas.Image
}

func NewImage(id, path string, span layout.Span, size fyne.Size) (*Image, error) {
	src, err := LoadImage(path, size)
	if err != nil {
		return nil, err
	}
	img := canvas.NewImageFromImage(src)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleFastest
	img.SetMinSize(size)
	return &Image{base: newBase(id, span), img: img}, nil
}

func (i *Image) Value() (any, error) { return nil, ErrNoValue }

func (i *Image) CanvasObject() fyne.CanvasObject { return i.img }

// LoadImage reads path with OpenCV and resizes it to fit within size.
func LoadImage(path string, size fyne.Size) (image.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrImageRead, path)
	}

	w, h := scaleToFit(mat.Cols(), mat.Rows(), int(size.Width), int(size.Height))
	if w == mat.Cols() && h == mat.Rows() {
		return mat.ToImage()
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(w, h), 0, 0, gocv.InterpolationNearestNeighbor)
	if resized.Empty() {
		return nil, fmt.Errorf("%w: resize of %s failed", ErrImageRead, path)
	}
	return resized.ToImage()
}

// scaleToFit returns the largest width and height no bigger than maxW x maxH
// with the same aspect ratio as w x h. A non-positive bound leaves that axis free.
func scaleToFit(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	scale := 1.0
	if maxW > 0 {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 {
		if s := float64(maxH) / float64(h); maxW <= 0 || s < scale {
			scale = s
		}
	}
	nw := max(1, int(float64(w)*scale))
	nh := max(1, int(float64(h)*scale))
	return nw, nh
}
