// Package gonumconv converts geometry_msgs and sensor_msgs message types to
// and from gonum data types: spatial vectors (r3.Vec), quaternions
// (quat.Number), and dense matrices (mat.Dense, mat.SymDense).
//
// Conversions copy fields verbatim and never normalize or repair their
// input. A pose carrying a zero-norm or NaN quaternion converts to an
// equally degenerate matrix; callers that want to reject such input can use
// CheckOrientation first.
package gonumconv

import (
	"fmt"
	"math"

	"github.com/bluenviron/goroslib/v2/pkg/msgs/geometry_msgs"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tsawler/rosconv"
)

// PointToVec copies a geometry_msgs/Point into an r3.Vec.
func PointToVec(p *geometry_msgs.Point) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// VecToPoint copies an r3.Vec into a geometry_msgs/Point.
func VecToPoint(v r3.Vec) *geometry_msgs.Point {
	return &geometry_msgs.Point{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector3ToVec copies a geometry_msgs/Vector3 into an r3.Vec.
func Vector3ToVec(v *geometry_msgs.Vector3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// VecToVector3 copies an r3.Vec into a geometry_msgs/Vector3.
func VecToVector3(v r3.Vec) *geometry_msgs.Vector3 {
	return &geometry_msgs.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// QuaternionToQuat copies a geometry_msgs/Quaternion into a quat.Number.
// ROS stores the scalar part in W; quat.Number stores it in Real.
func QuaternionToQuat(q *geometry_msgs.Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// QuatToQuaternion copies a quat.Number into a geometry_msgs/Quaternion.
func QuatToQuaternion(q quat.Number) *geometry_msgs.Quaternion {
	return &geometry_msgs.Quaternion{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

// OrientationRotation reinterprets a message quaternion as an r3.Rotation,
// suitable for rotating r3 vectors. The quaternion is used as-is; r3
// rotations are only meaningful for unit quaternions.
func OrientationRotation(q *geometry_msgs.Quaternion) r3.Rotation {
	return r3.Rotation(QuaternionToQuat(q))
}

// PoseToMat converts a geometry_msgs/Pose into a 4x4 homogeneous transform
// matrix: the upper-left 3x3 block is the rotation described by the
// orientation quaternion, the fourth column is the position. Position
// components are copied bit-for-bit. The rotation block is computed with
// the standard unit-quaternion formula; non-unit quaternions produce a
// correspondingly scaled block.
func PoseToMat(p *geometry_msgs.Pose) *mat.Dense {
	return homogeneous(&p.Orientation, p.Position.X, p.Position.Y, p.Position.Z)
}

// TransformToMat converts a geometry_msgs/Transform into a 4x4 homogeneous
// transform matrix, like PoseToMat.
func TransformToMat(t *geometry_msgs.Transform) *mat.Dense {
	return homogeneous(&t.Rotation, t.Translation.X, t.Translation.Y, t.Translation.Z)
}

// TransformStampedToMat converts the transform carried by a
// geometry_msgs/TransformStamped, ignoring the header.
func TransformStampedToMat(ts *geometry_msgs.TransformStamped) *mat.Dense {
	return TransformToMat(&ts.Transform)
}

func homogeneous(q *geometry_msgs.Quaternion, tx, ty, tz float64) *mat.Dense {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return mat.NewDense(4, 4, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w), tx,
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w), ty,
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y), tz,
		0, 0, 0, 1,
	})
}

// PoseFromParts builds a geometry_msgs/Pose from a position vector and an
// orientation quaternion.
func PoseFromParts(position r3.Vec, orientation quat.Number) *geometry_msgs.Pose {
	return &geometry_msgs.Pose{
		Position:    *VecToPoint(position),
		Orientation: *QuatToQuaternion(orientation),
	}
}

// TransformFromParts builds a geometry_msgs/Transform from a translation
// vector and a rotation quaternion.
func TransformFromParts(translation r3.Vec, rotation quat.Number) *geometry_msgs.Transform {
	return &geometry_msgs.Transform{
		Translation: *VecToVector3(translation),
		Rotation:    *QuatToQuaternion(rotation),
	}
}

// CovarianceToSym converts a row-major 6x6 ROS covariance array, as carried
// by PoseWithCovariance and TwistWithCovariance, into a mat.SymDense.
func CovarianceToSym(c [36]float64) *mat.SymDense {
	return mat.NewSymDense(6, c[:])
}

// CheckOrientation reports whether a quaternion is usable as a rotation:
// it fails with rosconv.ErrDegenerateInput for NaN components or a norm of
// zero. Conversions in this package do not call it; validation is opt-in.
func CheckOrientation(q *geometry_msgs.Quaternion) error {
	n := quat.Abs(QuaternionToQuat(q))
	if math.IsNaN(n) {
		return fmt.Errorf("%w: quaternion has NaN component", rosconv.ErrDegenerateInput)
	}
	if n == 0 {
		return fmt.Errorf("%w: zero-norm quaternion", rosconv.ErrDegenerateInput)
	}
	return nil
}
