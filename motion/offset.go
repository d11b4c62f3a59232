/*
NAME
  offset.go

DESCRIPTION
  offset.go defines the two coordinate systems the core works in:
  BlockOffset (MI units) and PlaneOffset (pixel units), along with the
  constants that relate them.

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

// MISize is the width and height, in pixels, of one minimum
// inter-prediction block.
const MISize = 4

// BlockToPlaneShift converts an MI-unit coordinate to a pixel
// coordinate: pixel = mi << BlockToPlaneShift.
const BlockToPlaneShift = 2 // log2(MISize)

// BlockOffset is a block position in MI (4x4) units.
type BlockOffset struct {
	X, Y int
}

// ToLumaPlaneOffset converts a frame-space block offset to a
// full-resolution pixel offset.
func (bo BlockOffset) ToLumaPlaneOffset() PlaneOffset {
	return PlaneOffset{X: bo.X << BlockToPlaneShift, Y: bo.Y << BlockToPlaneShift}
}

// PlaneOffset is a pixel position within a plane.
type PlaneOffset struct {
	X, Y int
}

// AdjustBlockOffset clamps bo so that a blkW x blkH block (in pixels)
// placed at bo lies entirely within a frame of mi_width x mi_height MI
// units.
func AdjustBlockOffset(bo BlockOffset, miWidth, miHeight, blkW, blkH int) BlockOffset {
	return BlockOffset{
		X: clampInt(bo.X, 0, miWidth-blkW/MISize),
		Y: clampInt(bo.Y, 0, miHeight-blkH/MISize),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
