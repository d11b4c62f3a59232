/*
NAME
  strategy.go

DESCRIPTION
  strategy.go defines the Strategy interface that makes the full-pel
  search algorithm pluggable: DiamondStrategy and FullSearchStrategy
  are the two interchangeable implementations, mirroring rav1e's
  choice between EPZS-diamond and full-pel exhaustive search.

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

// SearchParams bundles the parameters common to a single block's
// motion search, avoiding the parameter explosion of threading each
// one through individually.
type SearchParams[T Sample] struct {
	FI     *FrameInvariants[T]
	TS     TileState[T]
	Pred   InterPredictor[T]
	Rec    *ReferenceFrame[T]
	TileBo BlockOffset
	Lambda uint32
	PMV    [2]MotionVector

	// MVRange is the legal range at this search's own resolution: for
	// a half-resolution coarse search this is already halved relative
	// to FullMVRange.
	MVRange MVRange

	// FullMVRange is the legal range in full-resolution eighth-pel
	// units, independent of any halving MVRange has undergone. A
	// coarse-resolution search windows its candidate scan against this
	// before converting to its own resolution, rather than windowing
	// against an already-halved range a second time.
	FullMVRange MVRange

	BlkW     int
	BlkH     int
	RefFrame RefType
}

// Strategy is the pluggable full-pel search algorithm. Both
// implementations also supply the sub-pel stage and the half-
// resolution coarse-seeded search they pair with, since FullSearch
// pairs its sub-pel stage with telescopic refinement rather than the
// diamond.
type Strategy[T Sample] interface {
	// FullPixelME finds the best full-pel MV, seeded by cmv and the
	// EPZS predictor list.
	FullPixelME(p SearchParams[T], cmv MotionVector) (MotionVector, uint64)

	// SubPixelME refines (bestMV, bestCost) to sub-pel precision.
	SubPixelME(p SearchParams[T], bestMV MotionVector, bestCost uint64) (MotionVector, uint64)

	// MeSS2 runs the half-resolution coarse search seeded by up to
	// three optional predictors, refining (bestMV, bestCost) in place.
	MeSS2(p SearchParams[T], pmvs [3]*MotionVector, globalMV [2]MotionVector, bestMV MotionVector, bestCost uint64) (MotionVector, uint64)
}
