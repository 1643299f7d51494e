//go:build !yuv

// Stub used when the "yuv" build tag is not set: the yuv422 layout is still
// recognized, but decoding it fails with ErrYUVNotEnabled. Rebuild with
// -tags yuv to enable YUV 4:2:2 to RGB conversion.

package pixel

import "errors"

// ErrYUVNotEnabled is returned when yuv422 data is decoded but YUV support
// was not compiled in. Rebuild with -tags yuv to enable it.
var ErrYUVNotEnabled = errors.New("rosconv: YUV 4:2:2 support not enabled; rebuild with -tags yuv")

func init() {
	strategies["yuv422"].decode8 = func(Source, Order) ([]byte, error) {
		return nil, ErrYUVNotEnabled
	}
}
