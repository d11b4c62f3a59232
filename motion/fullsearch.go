/*
NAME
  fullsearch.go

DESCRIPTION
  fullsearch.go implements the exhaustive rectangular full search (spec
  §4.6): an alternative to the diamond search for the full-pel stage.

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

// FullSearch scans every point of the rectangular window [xLo,xHi] x
// [yLo,yHi] (inclusive, pixel coordinates) at the given pixel stride,
// returning the minimum-cost MV, expressed relative to po, and its
// cost. Ties are resolved in row-major (y outer, x inner) order: the
// first encountered minimum wins.
func FullSearch[T Sample](
	pOrg, pRef *Plane[T],
	xLo, xHi, yLo, yHi, step int,
	po PlaneOffset,
	bitDepth int, lambda uint32, pmv [2]MotionVector, hp bool,
	blkW, blkH int,
) (MotionVector, uint64) {
	orgRegion := pOrg.Region(po.X, po.Y)

	bestMV := MotionVector{}
	bestCost := MaxCost
	mvRange := MVRange{XMin: -1 << 30, XMax: 1 << 30, YMin: -1 << 30, YMax: 1 << 30}

	for y := yLo; y <= yHi; y += step {
		for x := xLo; x <= xHi; x += step {
			refRegion := pRef.Region(x, y)
			sad := Sad(orgRegion, refRegion, blkW, blkH, bitDepth)

			mv := MotionVector{
				Row: int16(8 * (y - po.Y)),
				Col: int16(8 * (x - po.X)),
			}
			cost := RDCost(mv, pmv, lambda, sad, mvRange, hp)
			if cost < bestCost {
				bestCost = cost
				bestMV = mv
			}
		}
	}
	return bestMV, bestCost
}
