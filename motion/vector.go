/*
NAME
  vector.go

DESCRIPTION
  vector.go defines MotionVector, the eighth-pel (row, col) pair that
  the motion estimation core searches for and returns.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package motion

// MotionVector is a (row, col) displacement in eighth-of-a-pixel units;
// a value of 8 corresponds to one whole pixel.
type MotionVector struct {
	Row, Col int16
}

// IsZero reports whether mv is the zero vector.
func (mv MotionVector) IsZero() bool { return mv.Row == 0 && mv.Col == 0 }

// Add returns the component-wise sum of mv and o.
func (mv MotionVector) Add(o MotionVector) MotionVector {
	return MotionVector{Row: mv.Row + o.Row, Col: mv.Col + o.Col}
}

// QuantizeToFullpel clears the low 3 bits of each component, rounding
// toward zero to the nearest integer-pel value.
func (mv MotionVector) QuantizeToFullpel() MotionVector {
	return MotionVector{
		Row: (mv.Row / 8) * 8,
		Col: (mv.Col / 8) * 8,
	}
}

// Halved returns mv with each component arithmetic-shifted right by 1,
// used to seed a half-resolution search from a full-resolution MV.
func (mv MotionVector) Halved() MotionVector {
	return MotionVector{Row: mv.Row >> 1, Col: mv.Col >> 1}
}

// Scaled returns mv with each component multiplied by n, used to
// re-scale a coarse-resolution result back into full-resolution
// eighth-pel units.
func (mv MotionVector) Scaled(n int16) MotionVector {
	return MotionVector{Row: mv.Row * n, Col: mv.Col * n}
}
