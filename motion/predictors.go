/*
NAME
  predictors.go

DESCRIPTION
  predictors.go implements the EPZS-style predictor collector: a
  bounded list of candidate seed MVs gathered from (0,0), the coarse
  MV, spatial neighbors in the current frame's tile MV grid, and
  temporal neighbors in the previous frame's MV grid.

  The "median" predictor is actually the arithmetic mean of up to
  three spatial neighbors, computed with gonum/stat.

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

import "gonum.org/v1/gonum/stat"

// MaxPredictors is the capacity of the candidate list: zero, coarse,
// up to 4 spatial (3 neighbors + mean), and up to 5 temporal.
const MaxPredictors = 11

// CollectPredictors gathers the bounded EPZS candidate list for
// tileBo, seeded by the coarse MV cmv, the current frame's tile MV
// grid tileMVs, and (optionally) the previous frame's MV grid for the
// same reference, prevMVs, indexed at the frame-global position
// frameBo. Order of insertion is significant: downstream tie-breaking
// prefers earlier candidates.
func CollectPredictors(tileBo BlockOffset, cmv MotionVector, tileMVs *FrameMotionVectors, prevMVs *FrameMotionVectors, frameBo BlockOffset) []MotionVector {
	predictors := make([]MotionVector, 0, MaxPredictors)

	// 1. Zero MV.
	predictors = append(predictors, MotionVector{})

	// 2. Coarse MV, quantized to full-pel.
	predictors = append(predictors, cmv.QuantizeToFullpel())

	// 3. Subset A+B: spatial neighbors in the current frame, plus
	// their arithmetic mean.
	var medianRows, medianCols []float64
	addSpatial := func(mv MotionVector) {
		medianRows = append(medianRows, float64(mv.Row))
		medianCols = append(medianCols, float64(mv.Col))
		if !mv.IsZero() {
			predictors = append(predictors, mv)
		}
	}
	if tileBo.X > 0 {
		addSpatial(tileMVs.At(tileBo.X-1, tileBo.Y))
	}
	if tileBo.Y > 0 {
		addSpatial(tileMVs.At(tileBo.X, tileBo.Y-1))
		if tileBo.X < tileMVs.Cols-1 {
			addSpatial(tileMVs.At(tileBo.X+1, tileBo.Y-1))
		}
	}
	if len(medianRows) > 0 {
		mean := MotionVector{
			Row: int16(stat.Mean(medianRows, nil)),
			Col: int16(stat.Mean(medianCols, nil)),
		}
		mean = mean.QuantizeToFullpel()
		if !mean.IsZero() {
			predictors = append(predictors, mean)
		}
	}

	// 4. Subset C: temporal neighbors in the previous frame, at the
	// frame-space co-located position.
	if prevMVs != nil {
		addTemporal := func(mv MotionVector) {
			if !mv.IsZero() {
				predictors = append(predictors, mv)
			}
		}
		if frameBo.X > 0 {
			addTemporal(prevMVs.At(frameBo.X-1, frameBo.Y))
		}
		if frameBo.Y > 0 {
			addTemporal(prevMVs.At(frameBo.X, frameBo.Y-1))
		}
		if frameBo.X < prevMVs.Cols-1 {
			addTemporal(prevMVs.At(frameBo.X+1, frameBo.Y))
		}
		if frameBo.Y < prevMVs.Rows-1 {
			addTemporal(prevMVs.At(frameBo.X, frameBo.Y+1))
		}
		addTemporal(prevMVs.At(frameBo.X, frameBo.Y))
	}

	return predictors
}
