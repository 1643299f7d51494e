package arrowconv

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"

	"github.com/tsawler/rosconv"
)

// LaserScanRecord converts a sensor_msgs/LaserScan into an Arrow record
// with a float32 "ranges" column and, when the scan carries intensity data,
// a float32 "intensities" column. Scan geometry (angle_min, angle_increment,
// range_min, range_max) is preserved as schema metadata so the angular
// coordinate of each range can be reconstructed.
//
// A non-empty intensities array whose length differs from the ranges array
// fails with rosconv.ErrInvalidDimensions.
func LaserScanRecord(scan *sensor_msgs.LaserScan) (arrow.Record, error) {
	if len(scan.Intensities) > 0 && len(scan.Intensities) != len(scan.Ranges) {
		return nil, fmt.Errorf("%w: %d intensities for %d ranges",
			rosconv.ErrInvalidDimensions, len(scan.Intensities), len(scan.Ranges))
	}

	fields := []arrow.Field{
		{Name: "ranges", Type: arrow.PrimitiveTypes.Float32},
	}
	if len(scan.Intensities) > 0 {
		fields = append(fields, arrow.Field{Name: "intensities", Type: arrow.PrimitiveTypes.Float32})
	}

	meta := arrow.NewMetadata(
		[]string{"angle_min", "angle_increment", "range_min", "range_max"},
		[]string{
			formatFloat32(scan.AngleMin),
			formatFloat32(scan.AngleIncrement),
			formatFloat32(scan.RangeMin),
			formatFloat32(scan.RangeMax),
		},
	)
	schema := arrow.NewSchema(fields, &meta)

	ranges := Float32Column(scan.Ranges)
	defer ranges.Release()
	cols := []arrow.Array{ranges}
	if len(scan.Intensities) > 0 {
		intensities := Float32Column(scan.Intensities)
		defer intensities.Release()
		cols = append(cols, intensities)
	}

	return array.NewRecord(schema, cols, int64(len(scan.Ranges))), nil
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
