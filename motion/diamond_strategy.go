/*
NAME
  diamond_strategy.go

DESCRIPTION
  diamond_strategy.go implements Strategy using the diamond search for
  both the full-pel and sub-pel stages, and for the half-resolution
  coarse pass.

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

// DiamondStrategy is the EPZS-seeded diamond search strategy.
type DiamondStrategy[T Sample] struct{}

func (DiamondStrategy[T]) FullPixelME(p SearchParams[T], cmv MotionVector) (MotionVector, uint64) {
	frameBo := p.TS.ToFrameBlockOffset(p.TileBo)
	tileMVs := p.TS.MVs(p.RefFrame.ToIndex())

	var prevMVs *FrameMotionVectors
	if p.FI.RecBuffer.Frames[p.FI.RefFrames[0]] != nil {
		frameRef := p.FI.RecBuffer.Frames[p.FI.RefFrames[0]]
		if p.RefFrame.ToIndex() < len(frameRef.FrameMVs) {
			prevMVs = frameRef.FrameMVs[p.RefFrame.ToIndex()]
		}
	}

	predictors := CollectPredictors(p.TileBo, cmv, tileMVs, prevMVs, frameBo)

	po := frameBo.ToLumaPlaneOffset()
	return DiamondSearch(p.FI, p.Pred, po, p.TS.InputPlane(), p.Rec.Frame, predictors, p.FI.BitDepth, p.PMV, p.Lambda, p.MVRange, p.BlkW, p.BlkH, p.RefFrame, false)
}

func (DiamondStrategy[T]) SubPixelME(p SearchParams[T], bestMV MotionVector, bestCost uint64) (MotionVector, uint64) {
	frameBo := p.TS.ToFrameBlockOffset(p.TileBo)
	po := frameBo.ToLumaPlaneOffset()
	return DiamondSearch(p.FI, p.Pred, po, p.TS.InputPlane(), p.Rec.Frame, []MotionVector{bestMV}, p.FI.BitDepth, p.PMV, p.Lambda, p.MVRange, p.BlkW, p.BlkH, p.RefFrame, true)
}

func (DiamondStrategy[T]) MeSS2(p SearchParams[T], pmvs [3]*MotionVector, globalMV [2]MotionVector, bestMV MotionVector, bestCost uint64) (MotionVector, uint64) {
	frameBoAdj := p.TS.ToFrameBlockOffset(p.TileBo)
	framePo := PlaneOffset{X: frameBoAdj.X << BlockToPlaneShift >> 1, Y: frameBoAdj.Y << BlockToPlaneShift >> 1}

	tileMVs := p.TS.MVs(0)
	var prevMVs *FrameMotionVectors
	if p.FI.RecBuffer.Frames[p.FI.RefFrames[0]] != nil {
		prevMVs = p.FI.RecBuffer.Frames[p.FI.RefFrames[0]].FrameMVs[0]
	}

	for _, pmv := range pmvs {
		if pmv == nil {
			continue
		}
		predictors := CollectPredictors(p.TileBo, *pmv, tileMVs, prevMVs, frameBoAdj)
		for i := range predictors {
			predictors[i] = predictors[i].Halved()
		}

		mv, cost := DiamondSearch(p.FI, p.Pred, framePo, p.TS.InputHres(), p.Rec.InputHres, predictors, p.FI.BitDepth, globalMV, p.Lambda, p.MVRange, p.BlkW, p.BlkH, LastFrame, false)
		if cost < bestCost {
			bestCost = cost
			bestMV = mv
		}
	}
	return bestMV, bestCost
}
