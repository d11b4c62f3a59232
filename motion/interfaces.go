/*
NAME
  interfaces.go

DESCRIPTION
  interfaces.go defines the external collaborators the core consumes:
  the inter-prediction sample synthesizer and the tile-state
  accessors. Both are supplied by the encoder embedding this package;
  the core only ever calls through these interfaces.

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

// InterPredictor synthesizes motion-compensated reference samples for
// a candidate MV, performing sub-pel interpolation internally. dst
// must be exactly blkW x blkH.
type InterPredictor[T Sample] interface {
	PredictInter(fi *FrameInvariants[T], po PlaneOffset, dst *Plane[T], blkW, blkH int, refs [2]RefType, mvs [2]MotionVector) error
}

// TileState exposes the tile-local accessors the core needs:
// translation to frame-global MI coordinates, the current frame's
// input planes at all three resolutions, the per-reference MV grid,
// and tile dimensions.
type TileState[T Sample] interface {
	ToFrameBlockOffset(tileBo BlockOffset) BlockOffset
	InputPlane() *Plane[T]
	InputHres() *Plane[T]
	InputQres() *Plane[T]
	MVs(refFrameIndex int) *FrameMotionVectors
	MIWidth() int
	MIHeight() int
}
