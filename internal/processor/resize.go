package processor

import (
	"image"

	"github.com/disintegration/imaging"
)

const (
	PreviewMaxWidth  = 400
	PreviewMaxHeight = 400

	HighResWidth  = 3000
	HighResHeight = 3600
)

// Preview scales img down to fit inside 400x400 keeping its aspect ratio.
// Images already within the box are returned unscaled.
func Preview(img image.Image) *image.NRGBA {
	return imaging.Fit(img, PreviewMaxWidth, PreviewMaxHeight, imaging.Lanczos)
}

// HighRes stretches img to exactly 3000x3600.
func HighRes(img image.Image) *image.NRGBA {
	return imaging.Resize(img, HighResWidth, HighResHeight, imaging.Lanczos)
}
