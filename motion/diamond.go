/*
NAME
  diamond.go

DESCRIPTION
  diamond.go implements EPZS-style shrinking-radius diamond search,
  the pattern AV1 encoders (and rav1e in particular) use for fast
  block motion search: a single procedure parameterized by full-pel vs
  sub-pel mode, seeded by the best of a predictor list.

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

var diamondPattern = [4][2]int16{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
}

// candidateCost evaluates the RD cost of cand_mv, either by taking a
// reference-plane region directly at cand's full-pel offset (full-pel
// mode) or by synthesizing sub-pel samples via pred into scratch
// (sub-pel mode).
func candidateCost[T Sample](
	po PlaneOffset, pOrg, pRef *Plane[T],
	fi *FrameInvariants[T], pred InterPredictor[T], scratch *Plane[T],
	refFrame RefType,
	bitDepth int, pmv [2]MotionVector, lambda uint32, mvRange MVRange,
	blkW, blkH int, cand MotionVector,
) uint64 {
	if !mvRange.Contains(cand) {
		return MaxCost
	}

	orgRegion := pOrg.Region(po.X, po.Y)

	var refRegion PlaneRegion[T]
	if scratch != nil {
		err := pred.PredictInter(fi, po, scratch, blkW, blkH, [2]RefType{refFrame, NoneFrame}, [2]MotionVector{cand, {}})
		if err != nil {
			return MaxCost
		}
		refRegion = scratch.Region(0, 0)
	} else {
		refRegion = pRef.Region(po.X+int(cand.Col)/8, po.Y+int(cand.Row)/8)
	}

	sad := Sad(orgRegion, refRegion, blkW, blkH, bitDepth)
	return RDCost(cand, pmv, lambda, sad, mvRange, fi.AllowHighPrecisionMV)
}

// bestPredictor returns the lowest-cost predictor in the list and its
// cost; this seeds the diamond search's initial center.
func bestPredictor[T Sample](
	po PlaneOffset, pOrg, pRef *Plane[T],
	fi *FrameInvariants[T], pred InterPredictor[T], scratch *Plane[T],
	refFrame RefType,
	bitDepth int, pmv [2]MotionVector, lambda uint32, mvRange MVRange,
	blkW, blkH int, predictors []MotionVector,
) (MotionVector, uint64) {
	best := MotionVector{}
	bestCost := MaxCost
	for _, p := range predictors {
		cost := candidateCost(po, pOrg, pRef, fi, pred, scratch, refFrame, bitDepth, pmv, lambda, mvRange, blkW, blkH, p)
		if cost < bestCost {
			best = p
			bestCost = cost
		}
	}
	return best, bestCost
}

// DiamondSearch performs the shrinking-radius diamond search. When
// subpixel is false it searches full-pel offsets directly against
// pRef; when true it synthesizes candidates through pred into a
// blkW x blkH scratch plane. Returns the best MV found and its cost,
// which is always < MaxCost.
func DiamondSearch[T Sample](
	fi *FrameInvariants[T], pred InterPredictor[T],
	po PlaneOffset, pOrg, pRef *Plane[T],
	predictors []MotionVector,
	bitDepth int, pmv [2]MotionVector, lambda uint32, mvRange MVRange,
	blkW, blkH int, refFrame RefType, subpixel bool,
) (MotionVector, uint64) {
	var radius, radiusEnd int16
	var scratch *Plane[T]
	if subpixel {
		radius = 4
		if fi.AllowHighPrecisionMV {
			radiusEnd = 1
		} else {
			radiusEnd = 2
		}
		scratch = NewPlane[T](blkW, blkH, 0, 0)
	} else {
		radius = 16
		radiusEnd = 8
	}

	center, centerCost := bestPredictor(po, pOrg, pRef, fi, pred, scratch, refFrame, bitDepth, pmv, lambda, mvRange, blkW, blkH, predictors)

	for {
		bestDiamondCost := MaxCost
		bestDiamondMV := MotionVector{}

		for _, d := range diamondPattern {
			cand := MotionVector{
				Row: center.Row + radius*d[0],
				Col: center.Col + radius*d[1],
			}
			cost := candidateCost(po, pOrg, pRef, fi, pred, scratch, refFrame, bitDepth, pmv, lambda, mvRange, blkW, blkH, cand)
			if cost < bestDiamondCost {
				bestDiamondCost = cost
				bestDiamondMV = cand
			}
		}

		if centerCost <= bestDiamondCost {
			if radius == radiusEnd {
				break
			}
			radius /= 2
		} else {
			center = bestDiamondMV
			centerCost = bestDiamondCost
		}
	}

	if centerCost >= MaxCost {
		panic("motion: diamond search failed to find an in-range candidate")
	}
	return center, centerCost
}
