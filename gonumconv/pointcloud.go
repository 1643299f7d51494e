package gonumconv

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tsawler/rosconv"
)

// float32 datatype code from the sensor_msgs/PointField definition.
const pointFieldFloat32 = 7

// PointCloudVecs extracts the x/y/z coordinates of every point in a
// sensor_msgs/PointCloud2 as r3 vectors, in row-major point order.
//
// The cloud's first three fields must be named "x", "y", "z", each a single
// float32; additional fields are ignored. The point step must cover the
// three coordinates and the data buffer must cover RowStep*Height bytes.
// Byte order follows the cloud's IsBigendian flag.
func PointCloudVecs(pc *sensor_msgs.PointCloud2) ([]r3.Vec, error) {
	if len(pc.Fields) < 3 {
		return nil, fmt.Errorf("%w: point cloud has %d fields, need at least x, y, z",
			rosconv.ErrUnsupportedEncoding, len(pc.Fields))
	}
	for i, want := range []string{"x", "y", "z"} {
		f := &pc.Fields[i]
		if f.Name != want {
			return nil, fmt.Errorf("%w: field %d is %q, want %q",
				rosconv.ErrUnsupportedEncoding, i, f.Name, want)
		}
		if f.Datatype != pointFieldFloat32 || f.Count != 1 {
			return nil, fmt.Errorf("%w: field %q is not a single float32",
				rosconv.ErrUnsupportedEncoding, want)
		}
	}

	width := int(pc.Width)
	height := int(pc.Height)
	pointStep := int(pc.PointStep)
	rowStep := int(pc.RowStep)
	for i := 0; i < 3; i++ {
		if pointStep < int(pc.Fields[i].Offset)+4 {
			return nil, fmt.Errorf("%w: point step %d does not cover the %q field",
				rosconv.ErrInvalidDimensions, pointStep, pc.Fields[i].Name)
		}
	}
	if rowStep < width*pointStep {
		return nil, fmt.Errorf("%w: row step %d < width %d * point step %d",
			rosconv.ErrInvalidDimensions, rowStep, width, pointStep)
	}
	if len(pc.Data) < rowStep*height {
		return nil, fmt.Errorf("%w: %d bytes of data, need %d",
			rosconv.ErrInvalidDimensions, len(pc.Data), rowStep*height)
	}

	var bo binary.ByteOrder = binary.LittleEndian
	if pc.IsBigendian {
		bo = binary.BigEndian
	}
	xOff := int(pc.Fields[0].Offset)
	yOff := int(pc.Fields[1].Offset)
	zOff := int(pc.Fields[2].Offset)

	out := make([]r3.Vec, 0, width*height)
	for row := 0; row < height; row++ {
		rowBytes := pc.Data[row*rowStep:]
		for col := 0; col < width; col++ {
			p := rowBytes[col*pointStep:]
			out = append(out, r3.Vec{
				X: float64(math.Float32frombits(bo.Uint32(p[xOff:]))),
				Y: float64(math.Float32frombits(bo.Uint32(p[yOff:]))),
				Z: float64(math.Float32frombits(bo.Uint32(p[zOff:]))),
			})
		}
	}
	return out, nil
}
