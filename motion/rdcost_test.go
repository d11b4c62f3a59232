/*
NAME
  rdcost_test.go

DESCRIPTION
  rdcost_test.go checks RD cost monotonicity in SAD, the out-of-range
  sentinel, and MV-range clamping.

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

func TestRDCostMonotonicInSAD(t *testing.T) {
	mv := MotionVector{Row: 8, Col: 8}
	pmv := [2]MotionVector{{}, {}}
	r := MVRange{XMin: -1000, XMax: 1000, YMin: -1000, YMax: 1000}

	low := RDCost(mv, pmv, 10, 100, r, true)
	high := RDCost(mv, pmv, 10, 200, r, true)
	if high <= low {
		t.Errorf("RDCost did not increase with SAD: low=%d high=%d", low, high)
	}
}

func TestRDCostOutOfRangeIsMaxCost(t *testing.T) {
	mv := MotionVector{Row: 2000, Col: 2000}
	pmv := [2]MotionVector{{}, {}}
	r := MVRange{XMin: -100, XMax: 100, YMin: -100, YMax: 100}

	if got := RDCost(mv, pmv, 10, 5, r, true); got != MaxCost {
		t.Errorf("RDCost for out-of-range mv = %d, want MaxCost", got)
	}
}

func TestRDCostPrefersCloserPredictor(t *testing.T) {
	mv := MotionVector{Row: 0, Col: 40}
	pmv := [2]MotionVector{{Row: 0, Col: 1000}, {Row: 0, Col: 40}}
	r := MVRange{XMin: -10000, XMax: 10000, YMin: -10000, YMax: 10000}

	cost := RDCost(mv, pmv, 10, 0, r, true)
	// mv matches pmv[1] exactly, so the rate term should be the +1 bias
	// toward pmv[0], not the (large) rate against pmv[1].
	want := uint64(10) * 1
	if cost != want {
		t.Errorf("RDCost = %d, want %d (sad=0, rate=pmv[1]+1 bias)", cost, want)
	}
}

func TestGetMVRangeShrinksTowardFrameEdge(t *testing.T) {
	// A block near the frame's right edge should have a smaller XMax
	// than one near the left edge.
	left := GetMVRange(40, 40, BlockOffset{X: 0, Y: 0}, 16, 16)
	right := GetMVRange(40, 40, BlockOffset{X: 36, Y: 0}, 16, 16)
	if right.XMax >= left.XMax {
		t.Errorf("XMax near right edge (%d) should be less than near left edge (%d)", right.XMax, left.XMax)
	}
}

func TestMVRangeContains(t *testing.T) {
	r := MVRange{XMin: -8, XMax: 8, YMin: -8, YMax: 8}
	if !r.Contains(MotionVector{Row: 0, Col: 8}) {
		t.Error("expected boundary MV to be contained")
	}
	if r.Contains(MotionVector{Row: 0, Col: 9}) {
		t.Error("expected out-of-range MV to be rejected")
	}
}
