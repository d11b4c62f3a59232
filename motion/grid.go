/*
NAME
  grid.go

DESCRIPTION
  grid.go implements FrameMotionVectors, the dense row-major per-frame
  MV grid shared across block positions: every block's motion vector
  at a glance, and the predictor source for its neighbors.

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

// FrameMotionVectors is a dense, row-major grid of one MotionVector
// per MI block for a full frame or tile. Storage length is always
// Cols*Rows; Row(i) returns the contiguous Cols-length slice for row
// i, never a copy.
type FrameMotionVectors struct {
	mvs  []MotionVector
	Cols int
	Rows int
}

// NewFrameMotionVectors allocates a cols x rows grid, default
// initialized to the zero MotionVector.
func NewFrameMotionVectors(cols, rows int) *FrameMotionVectors {
	return &FrameMotionVectors{
		mvs:  make([]MotionVector, cols*rows),
		Cols: cols,
		Rows: rows,
	}
}

// Row returns the Cols-length slice of MVs for row i. Mutating the
// returned slice mutates the grid.
func (g *FrameMotionVectors) Row(i int) []MotionVector {
	return g.mvs[i*g.Cols : (i+1)*g.Cols]
}

// At returns the MV at (x, y).
func (g *FrameMotionVectors) At(x, y int) MotionVector {
	return g.mvs[y*g.Cols+x]
}

// Set writes the MV at (x, y).
func (g *FrameMotionVectors) Set(x, y int, mv MotionVector) {
	g.mvs[y*g.Cols+x] = mv
}
