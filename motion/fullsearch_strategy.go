/*
NAME
  fullsearch_strategy.go

DESCRIPTION
  fullsearch_strategy.go implements Strategy using the exhaustive
  rectangular full search for the full-pel stage and telescopic 3x3
  refinement for the sub-pel stage.

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

// FullSearchStrategy is the exhaustive-scan full-pel strategy, paired
// with telescopic sub-pel refinement.
type FullSearchStrategy[T Sample] struct{}

const fullSearchRange = 16 // Pixels, half-window each side of cmv.

func (FullSearchStrategy[T]) FullPixelME(p SearchParams[T], cmv MotionVector) (MotionVector, uint64) {
	frameBo := p.TS.ToFrameBlockOffset(p.TileBo)
	po := frameBo.ToLumaPlaneOffset()

	xLo := po.X + clampInt(int(cmv.Col)/8-fullSearchRange, p.MVRange.XMin/8, p.MVRange.XMax/8)
	xHi := po.X + clampInt(int(cmv.Col)/8+fullSearchRange, p.MVRange.XMin/8, p.MVRange.XMax/8)
	yLo := po.Y + clampInt(int(cmv.Row)/8-fullSearchRange, p.MVRange.YMin/8, p.MVRange.YMax/8)
	yHi := po.Y + clampInt(int(cmv.Row)/8+fullSearchRange, p.MVRange.YMin/8, p.MVRange.YMax/8)

	return FullSearch(p.TS.InputPlane(), p.Rec.Frame, xLo, xHi, yLo, yHi, 2, po, p.FI.BitDepth, p.Lambda, p.PMV, p.FI.AllowHighPrecisionMV, p.BlkW, p.BlkH)
}

func (FullSearchStrategy[T]) SubPixelME(p SearchParams[T], bestMV MotionVector, bestCost uint64) (MotionVector, uint64) {
	frameBo := p.TS.ToFrameBlockOffset(p.TileBo)
	po := frameBo.ToLumaPlaneOffset()
	TelescopicSubpelSearch(p.FI, p.Pred, po, p.TS.InputPlane(), p.FI.BitDepth, p.Lambda, p.PMV, p.MVRange, p.BlkW, p.BlkH, p.RefFrame, &bestMV, &bestCost)
	return bestMV, bestCost
}

func (FullSearchStrategy[T]) MeSS2(p SearchParams[T], pmvs [3]*MotionVector, globalMV [2]MotionVector, bestMV MotionVector, bestCost uint64) (MotionVector, uint64) {
	frameBoAdj := p.TS.ToFrameBlockOffset(p.TileBo)
	framePo := PlaneOffset{X: frameBoAdj.X << BlockToPlaneShift >> 1, Y: frameBoAdj.Y << BlockToPlaneShift >> 1}

	for _, pmv := range pmvs {
		if pmv == nil {
			continue
		}
		xLo := framePo.X + (clampInt(int(pmv.Col)/8-fullSearchRange, p.FullMVRange.XMin/8, p.FullMVRange.XMax/8) >> 1)
		xHi := framePo.X + (clampInt(int(pmv.Col)/8+fullSearchRange, p.FullMVRange.XMin/8, p.FullMVRange.XMax/8) >> 1)
		yLo := framePo.Y + (clampInt(int(pmv.Row)/8-fullSearchRange, p.FullMVRange.YMin/8, p.FullMVRange.YMax/8) >> 1)
		yHi := framePo.Y + (clampInt(int(pmv.Row)/8+fullSearchRange, p.FullMVRange.YMin/8, p.FullMVRange.YMax/8) >> 1)

		mv, cost := FullSearch(p.TS.InputHres(), p.Rec.InputHres, xLo, xHi, yLo, yHi, 1, framePo, p.FI.BitDepth, p.Lambda, [2]MotionVector{{}, {}}, p.FI.AllowHighPrecisionMV, p.BlkW, p.BlkH)
		if cost < bestCost {
			bestCost = cost
			bestMV = mv
		}
	}
	return bestMV, bestCost
}
