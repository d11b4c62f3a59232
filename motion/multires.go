/*
NAME
  multires.go

DESCRIPTION
  multires.go implements the quarter- and half-resolution coarse ME
  drivers: EstimateMotionSS4 runs an exhaustive search on the qres
  planes; EstimateMotionSS2 runs a Strategy-selected coarse search on
  the hres planes, seeded by the ss4 result.

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

const (
	ss4LambdaDiv   = 16.0
	ss2LambdaDiv   = 4.0
	coarseLambdaFudge = 0.125
	ss4RangeX      = 192
	ss4RangeY      = 64
)

// EstimateMotionSS4 runs the quarter-resolution coarse search. It
// returns nil if the reference frame is absent. The returned MV's
// components are multiples of 4, expressed in full-resolution
// eighth-pel units.
func EstimateMotionSS4[T Sample](
	fi *FrameInvariants[T], ts TileState[T],
	bsize BlockSize, refIdx int, tileBo BlockOffset,
) *MotionVector {
	rec := fi.RecBuffer.Frames[refIdx]
	if rec == nil {
		logDebug("motion: ss4 reference absent", "ref_idx", refIdx)
		return nil
	}

	blkW, blkH := bsize.Width(), bsize.Height()
	tileBoAdj := AdjustBlockOffset(tileBo, ts.MIWidth(), ts.MIHeight(), blkW, blkH)
	frameBoAdj := ts.ToFrameBlockOffset(tileBoAdj)

	po := PlaneOffset{
		X: frameBoAdj.X << BlockToPlaneShift >> 2,
		Y: frameBoAdj.Y << BlockToPlaneShift >> 2,
	}

	mvRange := GetMVRange(fi.WInB, fi.HInB, frameBoAdj, blkW, blkH)
	rangeX := ss4RangeX * fi.MERangeScale
	rangeY := ss4RangeY * fi.MERangeScale
	xLo := po.X + maxInt(-rangeX, mvRange.XMin/8)>>2
	xHi := po.X + minInt(rangeX, mvRange.XMax/8)>>2
	yLo := po.Y + maxInt(-rangeY, mvRange.YMin/8)>>2
	yHi := po.Y + minInt(rangeY, mvRange.YMax/8)>>2

	lambda := uint32(fi.MELambda * 256.0 / ss4LambdaDiv * coarseLambdaFudge)

	bestMV, _ := FullSearch(ts.InputQres(), rec.InputQres, xLo, xHi, yLo, yHi, 1, po, fi.BitDepth, lambda, [2]MotionVector{}, fi.AllowHighPrecisionMV, blkW>>2, blkH>>2)

	result := bestMV.Scaled(4)
	return &result
}

// EstimateMotionSS2 runs the half-resolution coarse search, seeded by
// up to three caller-supplied predictors (each halved before
// seeding). Returns nil if the reference frame is absent. The
// returned MV's components are multiples of 2.
func EstimateMotionSS2[T Sample](
	strategy Strategy[T],
	fi *FrameInvariants[T], ts TileState[T], pred InterPredictor[T],
	bsize BlockSize, refIdx int, tileBo BlockOffset, pmvs [3]*MotionVector, refFrame int,
) *MotionVector {
	rec := fi.RecBuffer.Frames[refIdx]
	if rec == nil {
		return nil
	}

	blkW, blkH := bsize.Width(), bsize.Height()
	tileBoAdj := AdjustBlockOffset(tileBo, ts.MIWidth(), ts.MIHeight(), blkW, blkH)
	frameBoAdj := ts.ToFrameBlockOffset(tileBoAdj)
	mvRange := GetMVRange(fi.WInB, fi.HInB, frameBoAdj, blkW, blkH)
	halfRange := MVRange{XMin: mvRange.XMin >> 1, XMax: mvRange.XMax >> 1, YMin: mvRange.YMin >> 1, YMax: mvRange.YMax >> 1}

	globalMV := [2]MotionVector{}
	lambda := uint32(fi.MELambda * 256.0 / ss2LambdaDiv * coarseLambdaFudge)

	params := SearchParams[T]{
		FI: fi, TS: ts, Pred: pred, Rec: rec, TileBo: tileBoAdj,
		Lambda: lambda, PMV: globalMV, MVRange: halfRange, FullMVRange: mvRange,
		BlkW: blkW >> 1, BlkH: blkH >> 1, RefFrame: RefType(refFrame + 1),
	}

	bestMV, bestCost := strategy.MeSS2(params, pmvs, globalMV, MotionVector{}, MaxCost)
	result := bestMV.Scaled(2)
	_ = bestCost
	return &result
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
