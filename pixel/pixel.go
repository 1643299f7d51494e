// Package pixel maps ROS image encoding tags (as carried in the
// sensor_msgs/Image "encoding" field) to pixel layouts and decoding
// strategies. It is the shared lower layer of the imgconv and cvconv
// packages, but it is usable on its own for callers that want raw
// interleaved pixel data.
//
// Decoding never aliases the source buffer: every Decode call allocates a
// fresh, tightly packed output buffer, so the source message can be reused
// or released immediately afterwards.
//
// YUV 4:2:2 (the "yuv422" tag, UYVY byte order) requires the "yuv" build
// tag; without it, decoding yuv422 returns ErrYUVNotEnabled.
package pixel

import (
	"fmt"

	"github.com/tsawler/rosconv"
)

// Order selects the channel order of decoded color output. Gray encodings
// ignore it.
type Order int

const (
	// RGB orders decoded color channels red, green, blue. Alpha, when
	// present, stays last.
	RGB Order = iota
	// BGR orders decoded color channels blue, green, red. This is the
	// order OpenCV expects.
	BGR
)

// Layout describes the shape of a pixel encoding.
type Layout struct {
	// Channels is the number of channels in the decoded output.
	Channels int
	// BytesPerPixel is the per-pixel size of the encoded source buffer.
	// For yuv422 this is 2 even though decoded output has 3 channels.
	BytesPerPixel int
	// BitDepth is the per-channel bit depth of the decoded output.
	BitDepth int
}

// Source bundles the fields of a sensor_msgs/Image relevant to decoding.
// Step is the row stride of Data in bytes. BigEndian applies to encodings
// with multi-byte samples, such as mono16.
type Source struct {
	Encoding      string
	Width, Height int
	Step          int
	BigEndian     bool
	Data          []byte
}

type strategy struct {
	layout Layout
	// decode8 produces a tightly packed interleaved buffer of 8-bit
	// samples, layout.Channels per pixel. Nil for encodings that only
	// decode to 16-bit samples.
	decode8 func(src Source, order Order) ([]byte, error)
}

// strategies is the encoding dispatch table. Entries are registered in var
// or init blocks only; the map is never mutated after package
// initialization, so lookups are safe for concurrent use.
var strategies = map[string]*strategy{
	"mono8": {
		layout:  Layout{Channels: 1, BytesPerPixel: 1, BitDepth: 8},
		decode8: decodeCopy,
	},
	"mono16": {
		layout: Layout{Channels: 1, BytesPerPixel: 2, BitDepth: 16},
	},
	"rgb8": {
		layout:  Layout{Channels: 3, BytesPerPixel: 3, BitDepth: 8},
		decode8: decodeColor(0, 1, 2, false),
	},
	"bgr8": {
		layout:  Layout{Channels: 3, BytesPerPixel: 3, BitDepth: 8},
		decode8: decodeColor(2, 1, 0, false),
	},
	"rgba8": {
		layout:  Layout{Channels: 4, BytesPerPixel: 4, BitDepth: 8},
		decode8: decodeColor(0, 1, 2, true),
	},
	"bgra8": {
		layout:  Layout{Channels: 4, BytesPerPixel: 4, BitDepth: 8},
		decode8: decodeColor(2, 1, 0, true),
	},
	// yuv422 registers its decode function from yuv.go or yuv_stub.go.
	"yuv422": {
		layout: Layout{Channels: 3, BytesPerPixel: 2, BitDepth: 8},
	},
}

// Lookup returns the layout for an encoding tag. It fails with
// rosconv.ErrUnsupportedEncoding for tags this package has no rule for.
// The same tag always produces the same result.
func Lookup(encoding string) (Layout, error) {
	s, ok := strategies[encoding]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q", rosconv.ErrUnsupportedEncoding, encoding)
	}
	return s.layout, nil
}

// Validate checks that src's buffer is consistent with its declared
// dimensions: the stride must cover a full row of pixels and the buffer
// must cover Step*Height bytes. The encoding must be recognized.
func Validate(src Source) error {
	s, ok := strategies[src.Encoding]
	if !ok {
		return fmt.Errorf("%w: %q", rosconv.ErrUnsupportedEncoding, src.Encoding)
	}
	if src.Width < 0 || src.Height < 0 || src.Step < 0 {
		return fmt.Errorf("%w: negative dimension", rosconv.ErrInvalidDimensions)
	}
	if src.Step < src.Width*s.layout.BytesPerPixel {
		return fmt.Errorf("%w: step %d < width %d * %d bytes/pixel",
			rosconv.ErrInvalidDimensions, src.Step, src.Width, s.layout.BytesPerPixel)
	}
	if len(src.Data) < src.Step*src.Height {
		return fmt.Errorf("%w: %d bytes of data, need %d",
			rosconv.ErrInvalidDimensions, len(src.Data), src.Step*src.Height)
	}
	return nil
}

// Decode decodes src into a freshly allocated, tightly packed buffer of
// 8-bit samples in the requested channel order (Channels samples per pixel,
// rows contiguous). Encodings whose decoded output is not 8-bit, such as
// mono16, are rejected with rosconv.ErrUnsupportedEncoding; use Decode16
// for those.
func Decode(src Source, order Order) ([]byte, error) {
	if err := Validate(src); err != nil {
		return nil, err
	}
	s := strategies[src.Encoding]
	if s.decode8 == nil {
		return nil, fmt.Errorf("%w: %q has no 8-bit decoding", rosconv.ErrUnsupportedEncoding, src.Encoding)
	}
	return s.decode8(src, order)
}

// Decode16 decodes a 16-bit single-channel source (mono16) into host-order
// uint16 samples, honoring src.BigEndian.
func Decode16(src Source) ([]uint16, error) {
	if err := Validate(src); err != nil {
		return nil, err
	}
	if src.Encoding != "mono16" {
		return nil, fmt.Errorf("%w: %q is not a 16-bit encoding", rosconv.ErrUnsupportedEncoding, src.Encoding)
	}
	out := make([]uint16, src.Width*src.Height)
	for y := 0; y < src.Height; y++ {
		row := src.Data[y*src.Step:]
		for x := 0; x < src.Width; x++ {
			b0, b1 := row[2*x], row[2*x+1]
			if src.BigEndian {
				out[y*src.Width+x] = uint16(b0)<<8 | uint16(b1)
			} else {
				out[y*src.Width+x] = uint16(b1)<<8 | uint16(b0)
			}
		}
	}
	return out, nil
}

// decodeCopy handles single-channel 8-bit data: a straight row copy that
// drops any stride padding.
func decodeCopy(src Source, _ Order) ([]byte, error) {
	out := make([]byte, src.Width*src.Height)
	for y := 0; y < src.Height; y++ {
		copy(out[y*src.Width:(y+1)*src.Width], src.Data[y*src.Step:])
	}
	return out, nil
}

// decodeColor builds a strategy for interleaved 8-bit color data. ri, gi,
// bi give the source byte offsets of the red, green, and blue channels
// within one pixel; alpha marks a trailing alpha byte that is copied
// through unchanged.
func decodeColor(ri, gi, bi int, alpha bool) func(Source, Order) ([]byte, error) {
	return func(src Source, order Order) ([]byte, error) {
		bpp := 3
		if alpha {
			bpp = 4
		}
		out := make([]byte, src.Width*src.Height*bpp)
		for y := 0; y < src.Height; y++ {
			row := src.Data[y*src.Step:]
			for x := 0; x < src.Width; x++ {
				px := row[x*bpp:]
				o := (y*src.Width + x) * bpp
				r, g, b := px[ri], px[gi], px[bi]
				if order == BGR {
					r, b = b, r
				}
				out[o], out[o+1], out[o+2] = r, g, b
				if alpha {
					out[o+3] = px[3]
				}
			}
		}
		return out, nil
	}
}
