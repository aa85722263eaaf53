package vmath

import "math"

// Quat is a unit quaternion rotation
type Quat struct {
	W, X, Y, Z float64
}

// QIdentity is the no-rotation quaternion
var QIdentity = Quat{W: 1}

// QFromAxisAngle builds a rotation of deg degrees around axis
// A zero axis yields identity
func QFromAxisAngle(axis Vec3F, deg float64) Quat {
	n := V3FNormalize(axis)
	if n == V3FZero {
		return QIdentity
	}
	half := DegToRad(deg) * 0.5
	s := math.Sin(half)
	return Quat{W: math.Cos(half), X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// QFromEuler builds a rotation from pitch (X), yaw (Y) and roll (Z) in degrees
// Applied in Z, X, Y order
func QFromEuler(pitch, yaw, roll float64) Quat {
	qx := QFromAxisAngle(V3FRight, pitch)
	qy := QFromAxisAngle(V3FUp, yaw)
	qz := QFromAxisAngle(V3FForward, roll)
	return QMul(qy, QMul(qx, qz))
}

// QMul composes rotations, b is applied first
func QMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

func QConjugate(q Quat) Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func QNormalize(q Quat) Quat {
	mag := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if mag == 0 {
		return QIdentity
	}
	inv := 1.0 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QRotate rotates v by q
func QRotate(q Quat, v Vec3F) Vec3F {
	p := Quat{X: v.X, Y: v.Y, Z: v.Z}
	r := QMul(QMul(q, p), QConjugate(q))
	return Vec3F{r.X, r.Y, r.Z}
}

// QAngle returns the angle in degrees between two rotations, in [0, 180]
func QAngle(a, b Quat) float64 {
	dot := math.Abs(a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z)
	if dot > 1 {
		dot = 1
	}
	return RadToDeg(2 * math.Acos(dot))
}
