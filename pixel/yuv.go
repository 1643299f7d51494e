//go:build yuv

// YUV 4:2:2 decoding, enabled with the "yuv" build tag.
//
// The "yuv422" tag names packed UYVY data: each 4-byte group U Y0 V Y1
// carries two horizontally adjacent pixels sharing one pair of chroma
// samples. Conversion to RGB follows the Rec. 601 coefficients implemented
// by the standard library's color.YCbCrToRGB.

package pixel

import (
	"fmt"
	"image/color"

	"github.com/tsawler/rosconv"
)

func init() {
	strategies["yuv422"].decode8 = decodeUYVY
}

func decodeUYVY(src Source, order Order) ([]byte, error) {
	if src.Width%2 != 0 {
		return nil, fmt.Errorf("%w: yuv422 requires even width, got %d",
			rosconv.ErrInvalidDimensions, src.Width)
	}
	out := make([]byte, src.Width*src.Height*3)
	for y := 0; y < src.Height; y++ {
		row := src.Data[y*src.Step:]
		for x := 0; x < src.Width; x += 2 {
			g := row[x*2 : x*2+4]
			cb, y0, cr, y1 := g[0], g[1], g[2], g[3]
			o := (y*src.Width + x) * 3
			putRGB(out[o:], y0, cb, cr, order)
			putRGB(out[o+3:], y1, cb, cr, order)
		}
	}
	return out, nil
}

func putRGB(dst []byte, luma, cb, cr uint8, order Order) {
	r, g, b := color.YCbCrToRGB(luma, cb, cr)
	if order == BGR {
		r, b = b, r
	}
	dst[0], dst[1], dst[2] = r, g, b
}
