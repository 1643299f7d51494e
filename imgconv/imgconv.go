// Package imgconv converts sensor_msgs/Image messages to and from the
// standard library's image.Image types without cgo. For conversion to
// OpenCV matrices see the cvconv package.
//
// Supported encodings: mono8, mono16, rgb8, bgr8, rgba8, bgra8, and, when
// built with the "yuv" tag, yuv422.
package imgconv

import (
	"image"

	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"
	"golang.org/x/image/draw"

	"github.com/tsawler/rosconv/pixel"
)

func source(img *sensor_msgs.Image) pixel.Source {
	return pixel.Source{
		Encoding:  img.Encoding,
		Width:     int(img.Width),
		Height:    int(img.Height),
		Step:      int(img.Step),
		BigEndian: img.IsBigendian != 0,
		Data:      img.Data,
	}
}

// ToImage decodes a sensor_msgs/Image into a freshly allocated image.Image.
// The concrete type depends on the encoding: mono8 yields *image.Gray,
// mono16 *image.Gray16, rgba8 and bgra8 *image.NRGBA, and the opaque color
// encodings (rgb8, bgr8, yuv422) *image.RGBA. The returned image never
// shares memory with the message.
//
// Unknown encoding tags fail with rosconv.ErrUnsupportedEncoding; a data
// buffer shorter than Step*Height fails with rosconv.ErrInvalidDimensions.
func ToImage(img *sensor_msgs.Image) (image.Image, error) {
	src := source(img)
	rect := image.Rect(0, 0, src.Width, src.Height)

	switch img.Encoding {
	case "mono8":
		pix, err := pixel.Decode(src, pixel.RGB)
		if err != nil {
			return nil, err
		}
		return &image.Gray{Pix: pix, Stride: src.Width, Rect: rect}, nil

	case "mono16":
		samples, err := pixel.Decode16(src)
		if err != nil {
			return nil, err
		}
		out := image.NewGray16(rect)
		for i, s := range samples {
			out.Pix[2*i] = uint8(s >> 8) // Gray16 stores big-endian
			out.Pix[2*i+1] = uint8(s)
		}
		return out, nil

	case "rgba8", "bgra8":
		pix, err := pixel.Decode(src, pixel.RGB)
		if err != nil {
			return nil, err
		}
		return &image.NRGBA{Pix: pix, Stride: src.Width * 4, Rect: rect}, nil

	default:
		// Opaque color encodings: rgb8, bgr8, yuv422.
		pix, err := pixel.Decode(src, pixel.RGB)
		if err != nil {
			return nil, err
		}
		out := image.NewRGBA(rect)
		for i := 0; i < src.Width*src.Height; i++ {
			out.Pix[4*i] = pix[3*i]
			out.Pix[4*i+1] = pix[3*i+1]
			out.Pix[4*i+2] = pix[3*i+2]
			out.Pix[4*i+3] = 0xff
		}
		return out, nil
	}
}

// FromImage encodes an image.Image as a sensor_msgs/Image. *image.Gray
// becomes mono8 and *image.Gray16 becomes big-endian mono16; everything
// else is normalized to non-premultiplied RGBA via x/image/draw and becomes
// rgba8. The message owns its data buffer; the source image is not
// retained. The header is left zero for the caller to fill in.
func FromImage(src image.Image) *sensor_msgs.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	switch im := src.(type) {
	case *image.Gray:
		return newMessage("mono8", w, h, w, 0, packRows(im.Pix, im.Stride, w, h))
	case *image.Gray16:
		return newMessage("mono16", w, h, w*2, 1, packRows(im.Pix, im.Stride, w*2, h))
	}

	norm := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(norm, norm.Bounds(), src, b.Min, draw.Src)
	return newMessage("rgba8", w, h, w*4, 0, norm.Pix)
}

func newMessage(encoding string, w, h, step int, bigendian uint8, data []byte) *sensor_msgs.Image {
	return &sensor_msgs.Image{
		Height:      uint32(h),
		Width:       uint32(w),
		Encoding:    encoding,
		IsBigendian: bigendian,
		Step:        uint32(step),
		Data:        data,
	}
}

// packRows copies h rows of rowBytes bytes out of a strided pixel buffer,
// dropping any stride padding.
func packRows(pix []byte, stride, rowBytes, h int) []byte {
	out := make([]byte, rowBytes*h)
	for y := 0; y < h; y++ {
		copy(out[y*rowBytes:(y+1)*rowBytes], pix[y*stride:])
	}
	return out
}
