// Package arrowconv converts ROS message data into Apache Arrow columnar
// form: typed arrays for homogeneous primitive sequences, struct arrays for
// sensor_msgs/PointCloud2, and records for sensor_msgs/LaserScan.
//
// Returned arrays and records are freshly allocated and independent of the
// source message. They follow Arrow's reference-counting convention: call
// Release when done.
package arrowconv

import (
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// The column constructors map a homogeneous slice of primitive values, as
// carried by a ROS message array field, onto the Arrow array of the
// matching type. One constructor per primitive; there is deliberately no
// heterogeneous or interface-typed variant.

// Int8Column builds an Arrow Int8 array from vals.
func Int8Column(vals []int8) *array.Int8 {
	b := array.NewInt8Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewInt8Array()
}

// Uint8Column builds an Arrow Uint8 array from vals.
func Uint8Column(vals []uint8) *array.Uint8 {
	b := array.NewUint8Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewUint8Array()
}

// Int16Column builds an Arrow Int16 array from vals.
func Int16Column(vals []int16) *array.Int16 {
	b := array.NewInt16Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewInt16Array()
}

// Uint16Column builds an Arrow Uint16 array from vals.
func Uint16Column(vals []uint16) *array.Uint16 {
	b := array.NewUint16Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewUint16Array()
}

// Int32Column builds an Arrow Int32 array from vals.
func Int32Column(vals []int32) *array.Int32 {
	b := array.NewInt32Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewInt32Array()
}

// Uint32Column builds an Arrow Uint32 array from vals.
func Uint32Column(vals []uint32) *array.Uint32 {
	b := array.NewUint32Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewUint32Array()
}

// Int64Column builds an Arrow Int64 array from vals.
func Int64Column(vals []int64) *array.Int64 {
	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewInt64Array()
}

// Uint64Column builds an Arrow Uint64 array from vals.
func Uint64Column(vals []uint64) *array.Uint64 {
	b := array.NewUint64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewUint64Array()
}

// Float32Column builds an Arrow Float32 array from vals.
func Float32Column(vals []float32) *array.Float32 {
	b := array.NewFloat32Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewFloat32Array()
}

// Float64Column builds an Arrow Float64 array from vals.
func Float64Column(vals []float64) *array.Float64 {
	b := array.NewFloat64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewFloat64Array()
}
