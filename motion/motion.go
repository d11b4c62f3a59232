/*
NAME
  motion.go

DESCRIPTION
  motion.go implements MotionEstimation, the full-resolution entry
  point exposed to partition search: it combines the full-pixel and
  sub-pixel stages of whichever Strategy the caller selects.

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

// fullResLambdaFudge is the fudge factor applied when scaling
// me_lambda for the full-resolution search.
const fullResLambdaFudge = 0.5

// MotionEstimation is the full-resolution ME entry point. It returns
// (0,0) if the reference frame named by refFrame is absent.
func MotionEstimation[T Sample](
	strategy Strategy[T],
	fi *FrameInvariants[T], ts TileState[T], pred InterPredictor[T],
	bsize BlockSize, tileBo BlockOffset, refFrame RefType,
	cmv MotionVector, pmv [2]MotionVector,
) MotionVector {
	slot := fi.RefFrames[refFrame.ToIndex()]
	rec := fi.RecBuffer.Frames[slot]
	if rec == nil {
		logDebug("motion: reference frame absent, returning zero MV", "ref_frame", refFrame, "slot", slot)
		return MotionVector{}
	}

	blkW, blkH := bsize.Width(), bsize.Height()
	frameBo := ts.ToFrameBlockOffset(tileBo)
	mvRange := GetMVRange(fi.WInB, fi.HInB, frameBo, blkW, blkH)

	lambda := uint32(fi.MELambda * 256.0 * fullResLambdaFudge)

	params := SearchParams[T]{
		FI: fi, TS: ts, Pred: pred, Rec: rec, TileBo: tileBo,
		Lambda: lambda, PMV: pmv, MVRange: mvRange, FullMVRange: mvRange,
		BlkW: blkW, BlkH: blkH, RefFrame: refFrame,
	}

	bestMV, bestCost := strategy.FullPixelME(params, cmv)
	bestMV, _ = strategy.SubPixelME(params, bestMV, bestCost)
	return bestMV
}
