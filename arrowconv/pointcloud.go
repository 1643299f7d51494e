package arrowconv

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"

	"github.com/tsawler/rosconv"
)

// Datatype codes from the sensor_msgs/PointField definition.
const (
	pointFieldInt8    = 1
	pointFieldUint8   = 2
	pointFieldInt16   = 3
	pointFieldUint16  = 4
	pointFieldInt32   = 5
	pointFieldUint32  = 6
	pointFieldFloat32 = 7
	pointFieldFloat64 = 8
)

func arrowType(datatype uint8) (arrow.DataType, int, error) {
	switch datatype {
	case pointFieldInt8:
		return arrow.PrimitiveTypes.Int8, 1, nil
	case pointFieldUint8:
		return arrow.PrimitiveTypes.Uint8, 1, nil
	case pointFieldInt16:
		return arrow.PrimitiveTypes.Int16, 2, nil
	case pointFieldUint16:
		return arrow.PrimitiveTypes.Uint16, 2, nil
	case pointFieldInt32:
		return arrow.PrimitiveTypes.Int32, 4, nil
	case pointFieldUint32:
		return arrow.PrimitiveTypes.Uint32, 4, nil
	case pointFieldFloat32:
		return arrow.PrimitiveTypes.Float32, 4, nil
	case pointFieldFloat64:
		return arrow.PrimitiveTypes.Float64, 8, nil
	default:
		return nil, 0, fmt.Errorf("%w: point field datatype %d", rosconv.ErrUnsupportedEncoding, datatype)
	}
}

func appendValue(bld array.Builder, datatype uint8, b []byte, bo binary.ByteOrder) {
	switch datatype {
	case pointFieldInt8:
		bld.(*array.Int8Builder).Append(int8(b[0]))
	case pointFieldUint8:
		bld.(*array.Uint8Builder).Append(b[0])
	case pointFieldInt16:
		bld.(*array.Int16Builder).Append(int16(bo.Uint16(b)))
	case pointFieldUint16:
		bld.(*array.Uint16Builder).Append(bo.Uint16(b))
	case pointFieldInt32:
		bld.(*array.Int32Builder).Append(int32(bo.Uint32(b)))
	case pointFieldUint32:
		bld.(*array.Uint32Builder).Append(bo.Uint32(b))
	case pointFieldFloat32:
		bld.(*array.Float32Builder).Append(math.Float32frombits(bo.Uint32(b)))
	case pointFieldFloat64:
		bld.(*array.Float64Builder).Append(math.Float64frombits(bo.Uint64(b)))
	}
}

// PointCloudStruct converts a sensor_msgs/PointCloud2 into an Arrow struct
// array with one child column per point field, in row-major point order.
// Fields with Count == 1 become primitive columns; fields with Count > 1
// become fixed-size-list columns of that length. Byte order follows the
// cloud's IsBigendian flag.
//
// The declared layout is validated first: every field must fit within the
// point step, a row of points must fit within the row step, and the data
// buffer must cover RowStep*Height bytes. Nothing is allocated on failure.
func PointCloudStruct(pc *sensor_msgs.PointCloud2) (*array.Struct, error) {
	width := int(pc.Width)
	height := int(pc.Height)
	pointStep := int(pc.PointStep)
	rowStep := int(pc.RowStep)

	if rowStep < width*pointStep {
		return nil, fmt.Errorf("%w: row step %d < width %d * point step %d",
			rosconv.ErrInvalidDimensions, rowStep, width, pointStep)
	}
	if len(pc.Data) < rowStep*height {
		return nil, fmt.Errorf("%w: %d bytes of data, need %d",
			rosconv.ErrInvalidDimensions, len(pc.Data), rowStep*height)
	}

	type fieldDesc struct {
		name     string
		datatype uint8
		offset   int
		size     int
		count    int
		dtype    arrow.DataType
	}
	descs := make([]fieldDesc, 0, len(pc.Fields))
	for _, f := range pc.Fields {
		dtype, size, err := arrowType(f.Datatype)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		d := fieldDesc{
			name:     f.Name,
			datatype: f.Datatype,
			offset:   int(f.Offset),
			size:     size,
			count:    int(f.Count),
			dtype:    dtype,
		}
		if d.offset+d.size*d.count > pointStep {
			return nil, fmt.Errorf("%w: field %q extends past point step %d",
				rosconv.ErrInvalidDimensions, f.Name, pointStep)
		}
		descs = append(descs, d)
	}

	var bo binary.ByteOrder = binary.LittleEndian
	if pc.IsBigendian {
		bo = binary.BigEndian
	}
	mem := memory.DefaultAllocator

	cols := make([]arrow.Array, 0, len(descs))
	names := make([]string, 0, len(descs))
	for _, d := range descs {
		var bld, elems array.Builder
		if d.count == 1 {
			bld = array.NewBuilder(mem, d.dtype)
			elems = bld
		} else {
			lb := array.NewFixedSizeListBuilderWithField(mem, int32(d.count),
				arrow.Field{Name: d.name, Type: d.dtype})
			elems = lb.ValueBuilder()
			bld = lb
		}

		for row := 0; row < height; row++ {
			rowBytes := pc.Data[row*rowStep:]
			for col := 0; col < width; col++ {
				p := rowBytes[col*pointStep+d.offset:]
				if lb, ok := bld.(*array.FixedSizeListBuilder); ok {
					lb.Append(true)
				}
				for i := 0; i < d.count; i++ {
					appendValue(elems, d.datatype, p[i*d.size:], bo)
				}
			}
		}

		cols = append(cols, bld.NewArray())
		names = append(names, d.name)
		bld.Release()
	}

	out, err := array.NewStructArray(cols, names)
	for _, c := range cols {
		c.Release()
	}
	if err != nil {
		return nil, fmt.Errorf("building struct array: %w", err)
	}
	return out, nil
}
