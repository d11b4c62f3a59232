/*
NAME
  grid_test.go

DESCRIPTION
  grid_test.go checks FrameMotionVectors' row-major indexing and that
  Row returns a live view into the backing storage.

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

import "testing"

func TestFrameMotionVectorsSetAt(t *testing.T) {
	g := NewFrameMotionVectors(4, 3)
	mv := MotionVector{Row: 7, Col: -2}
	g.Set(2, 1, mv)
	if got := g.At(2, 1); got != mv {
		t.Errorf("At(2,1) = %v, want %v", got, mv)
	}
	if got := g.At(0, 0); !got.IsZero() {
		t.Errorf("At(0,0) = %v, want zero MV", got)
	}
}

func TestFrameMotionVectorsRowIsLiveView(t *testing.T) {
	g := NewFrameMotionVectors(4, 2)
	row := g.Row(1)
	row[2] = MotionVector{Row: 5, Col: 5}
	if got := g.At(2, 1); got != (MotionVector{Row: 5, Col: 5}) {
		t.Errorf("mutating Row slice did not update grid: got %v", got)
	}
}

func TestFrameMotionVectorsDimensions(t *testing.T) {
	g := NewFrameMotionVectors(5, 6)
	if g.Cols != 5 || g.Rows != 6 {
		t.Errorf("Cols=%d Rows=%d, want 5,6", g.Cols, g.Rows)
	}
	if len(g.Row(0)) != 5 {
		t.Errorf("len(Row(0)) = %d, want 5", len(g.Row(0)))
	}
}
