//go:build gocv

// Package cvconv converts sensor_msgs/Image messages into OpenCV matrices
// via gocv. It requires cgo and an OpenCV installation, so it is only
// compiled in when the "gocv" build tag is set:
//
//	go build -tags gocv
//
// On macOS, install OpenCV via:
//
//	brew install opencv
//
// On Ubuntu/Debian, follow the gocv installation instructions at
// https://gocv.io/getting-started/linux/.
//
// Without the tag, a stub implementation is used and ImageToMat returns
// ErrOpenCVNotEnabled.
package cvconv

import (
	"fmt"

	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"
	"gocv.io/x/gocv"

	"github.com/tsawler/rosconv"
	"github.com/tsawler/rosconv/pixel"
)

// ImageToMat decodes a sensor_msgs/Image into a freshly allocated gocv.Mat
// in OpenCV's native channel order: mono8 becomes a CV_8UC1 matrix; rgb8,
// bgr8, and (with the "yuv" build tag) yuv422 become CV_8UC3 matrices with
// blue-green-red channels. The Mat owns a copy of the pixel data; close it
// when done.
//
// Unknown encoding tags fail with rosconv.ErrUnsupportedEncoding; a data
// buffer shorter than Step*Height fails with rosconv.ErrInvalidDimensions.
// No Mat is allocated on failure.
func ImageToMat(img *sensor_msgs.Image) (gocv.Mat, error) {
	layout, err := pixel.Lookup(img.Encoding)
	if err != nil {
		return gocv.Mat{}, err
	}

	src := pixel.Source{
		Encoding:  img.Encoding,
		Width:     int(img.Width),
		Height:    int(img.Height),
		Step:      int(img.Step),
		BigEndian: img.IsBigendian != 0,
		Data:      img.Data,
	}

	var mt gocv.MatType
	switch layout.Channels {
	case 1:
		mt = gocv.MatTypeCV8UC1
	case 3:
		mt = gocv.MatTypeCV8UC3
	default:
		return gocv.Mat{}, fmt.Errorf("%w: %q is not supported for OpenCV conversion",
			rosconv.ErrUnsupportedEncoding, img.Encoding)
	}

	data, err := pixel.Decode(src, pixel.BGR)
	if err != nil {
		return gocv.Mat{}, err
	}
	m, err := gocv.NewMatFromBytes(src.Height, src.Width, mt, data)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("building Mat: %w", err)
	}
	return m, nil
}
