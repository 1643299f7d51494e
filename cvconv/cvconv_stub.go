//go:build !gocv

// Package cvconv converts sensor_msgs/Image messages into OpenCV matrices
// via gocv.
//
// This is the stub implementation used when the "gocv" build tag is not
// set. ImageToMat always returns ErrOpenCVNotEnabled. To enable OpenCV
// conversion, rebuild with the "gocv" build tag:
//
//	go build -tags gocv
//
// This requires cgo and an OpenCV installation; see
// https://gocv.io/getting-started/ for platform instructions.
package cvconv

import (
	"errors"

	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"
)

// ErrOpenCVNotEnabled is returned when OpenCV conversion is requested but
// gocv support was not compiled in. Rebuild with -tags gocv to enable it.
var ErrOpenCVNotEnabled = errors.New("rosconv: OpenCV support not enabled; rebuild with -tags gocv")

// Mat is a placeholder for gocv.Mat in builds without OpenCV support.
type Mat struct{}

// Close releases nothing; it exists so callers can defer Close uniformly.
func (Mat) Close() error { return nil }

// ImageToMat always fails with ErrOpenCVNotEnabled in builds without the
// "gocv" tag.
func ImageToMat(*sensor_msgs.Image) (Mat, error) {
	return Mat{}, ErrOpenCVNotEnabled
}
