/*
NAME
  rdcost.go

DESCRIPTION
  rdcost.go combines SAD and the MV-rate model into an RD cost and
  derives the legal MV range for a block at a given frame position.

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

import "math"

// MaxCost is the sentinel RD cost for a candidate that must never be
// chosen: out-of-range MVs and missing references both resolve to it.
const MaxCost = uint64(math.MaxUint64)

// MVRange is the [xmin,xmax] x [ymin,ymax] rectangle, in eighth-pel
// units, that a returned MV must lie within.
type MVRange struct {
	XMin, XMax, YMin, YMax int
}

// Contains reports whether mv lies within r.
func (r MVRange) Contains(mv MotionVector) bool {
	x, y := int(mv.Col), int(mv.Row)
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// GetMVRange derives the legal MV range for a blkW x blkH block at
// frame-space offset bo, in a frame of wInB x hInB MI units.
func GetMVRange(wInB, hInB int, bo BlockOffset, blkW, blkH int) MVRange {
	borderW := 128 + 8*blkW
	borderH := 128 + 8*blkH
	return MVRange{
		XMin: -8*MISize*bo.X - borderW,
		XMax: 8*MISize*(wInB-bo.X-blkW/MISize) + borderW,
		YMin: -8*MISize*bo.Y - borderH,
		YMax: 8*MISize*(hInB-bo.Y-blkH/MISize) + borderH,
	}
}

// RDCost computes 256*sad + lambda*min(MVRate(mv,pmv[0]),
// MVRate(mv,pmv[1])+1), or MaxCost if mv falls outside r.
func RDCost(mv MotionVector, pmv [2]MotionVector, lambda uint32, sad uint32, r MVRange, hp bool) uint64 {
	if !r.Contains(mv) {
		return MaxCost
	}
	rate1 := MVRate(mv, pmv[0], hp)
	rate2 := MVRate(mv, pmv[1], hp)
	rate := rate1
	if rate2+1 < rate {
		rate = rate2 + 1
	}
	return 256*uint64(sad) + uint64(rate)*uint64(lambda)
}
