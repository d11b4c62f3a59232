/*
NAME
  frame.go

DESCRIPTION
  frame.go defines FrameInvariants and ReferenceFrame, the per-frame
  parameters and reference-frame state the core consumes.

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

// FrameInvariants holds the parameters that are immutable for the
// duration of encoding one frame.
type FrameInvariants[T Sample] struct {
	BitDepth             int // 8, 10 or 12.
	AllowHighPrecisionMV bool
	MELambda             float64
	MERangeScale         int
	WInB, HInB           int // Frame dimensions in MI units.

	// RefFrames maps a RefType index to a reference slot index.
	RefFrames [8]int

	// RecBuffer holds the reference slots; a nil entry means the slot
	// is unoccupied, which a search resolves to the zero MV rather
	// than treating as an error.
	RecBuffer RecBuffer[T]
}

// RecBuffer is the set of reconstructed reference-frame slots a frame
// may search against.
type RecBuffer[T Sample] struct {
	Frames []*ReferenceFrame[T]
}

// ReferenceFrame holds a previously reconstructed frame's full-, half-
// and quarter-resolution luma planes, plus the MV grid that frame
// produced.
type ReferenceFrame[T Sample] struct {
	Frame     *Plane[T]
	InputHres *Plane[T]
	InputQres *Plane[T]

	// FrameMVs is indexed by reference-frame slot, mirroring the
	// per-reference tile MV grids a tile produces.
	FrameMVs []*FrameMotionVectors
}
