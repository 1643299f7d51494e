// Package rosconv provides conversions between ROS message types, as defined
// by goroslib, and data types from third-party numerical, vision, and
// columnar-data libraries.
//
// Each target ecosystem lives in its own subpackage, so a consumer only pulls
// in the libraries for the conversions it actually imports:
//
//   - gonumconv: geometry_msgs and sensor_msgs/PointCloud2 to gonum types
//     (r3.Vec, quat.Number, mat.Dense).
//   - arrowconv: sensor_msgs/PointCloud2 and sensor_msgs/LaserScan to Apache
//     Arrow arrays and records.
//   - imgconv: sensor_msgs/Image to and from the standard library image.Image.
//   - cvconv: sensor_msgs/Image to OpenCV Mat via gocv. Requires cgo and an
//     OpenCV installation; rebuild with the "gocv" build tag to enable.
//   - pixel: the shared pixel-encoding registry used by imgconv and cvconv.
//     YUV 4:2:2 decoding is enabled with the "yuv" build tag.
//
// Every conversion is a pure function: it allocates a fresh target value per
// call, retains no reference to the source message, and returns a typed error
// instead of logging or panicking. Concurrent callers need no coordination.
//
// This package itself only defines the error values shared by the conversion
// subpackages.
package rosconv
