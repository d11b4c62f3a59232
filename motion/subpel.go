/*
NAME
  subpel.go

DESCRIPTION
  subpel.go implements the telescopic 3x3 sub-pel refinement (spec
  §4.7): the alternative sub-pel path used when the caller selected
  full-search for the full-pel stage.

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

// TelescopicSubpelSearch refines bestMV/lowestCost in place by
// evaluating the 3x3 neighborhood around the current best MV at
// successively finer eighth-pel steps {8,4,2} (and additionally 1 if
// fi.AllowHighPrecisionMV).
func TelescopicSubpelSearch[T Sample](
	fi *FrameInvariants[T], pred InterPredictor[T],
	po PlaneOffset, pOrg *Plane[T],
	bitDepth int, lambda uint32, pmv [2]MotionVector, mvRange MVRange,
	blkW, blkH int, refFrame RefType,
	bestMV *MotionVector, lowestCost *uint64,
) {
	steps := []int16{8, 4, 2}
	if fi.AllowHighPrecisionMV {
		steps = append(steps, 1)
	}

	scratch := NewPlane[T](blkW, blkH, 0, 0)
	orgRegion := pOrg.Region(po.X, po.Y)

	for _, step := range steps {
		centerH := *bestMV
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if i == 1 && j == 1 {
					continue
				}
				cand := MotionVector{
					Row: centerH.Row + step*int16(i-1),
					Col: centerH.Col + step*int16(j-1),
				}
				if !mvRange.Contains(cand) {
					continue
				}

				err := pred.PredictInter(fi, po, scratch, blkW, blkH, [2]RefType{refFrame, NoneFrame}, [2]MotionVector{cand, {}})
				if err != nil {
					continue
				}
				refRegion := scratch.Region(0, 0)
				sad := Sad(orgRegion, refRegion, blkW, blkH, bitDepth)

				rate1 := MVRate(cand, pmv[0], fi.AllowHighPrecisionMV)
				rate2 := MVRate(cand, pmv[1], fi.AllowHighPrecisionMV)
				rate := rate1
				if rate2+1 < rate {
					rate = rate2 + 1
				}
				cost := 256*uint64(sad) + uint64(rate)*uint64(lambda)

				if cost < *lowestCost {
					*lowestCost = cost
					*bestMV = cand
				}
			}
		}
	}
}
