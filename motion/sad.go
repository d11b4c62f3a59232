/*
NAME
  sad.go

DESCRIPTION
  sad.go implements the SAD (sum of absolute differences) distortion
  kernel and its dispatch layer. Dispatch selects a tiled decomposition
  keyed on element width, block size and the probed CPU capability set
  / source pointer alignment; every tile is summed with the same
  scalar kernel, so every dispatch path is bit-exact with the scalar
  reference by construction.

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

import "math/bits"

// Sad returns sum(|A[r,c] - B[r,c]|) over the w x h block, dispatching
// to a tiled kernel selected by element width, block size, the probed
// CPU capability set and A's base pointer alignment.
func Sad[T Sample](a, b PlaneRegion[T], w, h, bitDepth int) uint32 {
	if w < 4 || h < 4 {
		panic("motion: Sad called with block dimension < 4")
	}

	var zero T
	switch any(zero).(type) {
	case uint16:
		return sadHighBitDepth(a, b, w, h, bitDepth)
	case uint8:
		return sad8(a, b, w, h)
	default:
		panic("motion: unsupported sample type")
	}
}

// sadScalar is the unconditional reference kernel: rows and columns,
// wrapping subtraction in signed 32-bit, absolute value accumulated
// into a u32 total. Every dispatch path must reduce to this.
func sadScalar[T Sample](a, b PlaneRegion[T], w, h int) uint32 {
	var sum uint32
	for r := 0; r < h; r++ {
		arow := a.Row(r, w)
		brow := b.Row(r, w)
		for c := 0; c < w; c++ {
			d := int32(arow[c]) - int32(brow[c])
			if d < 0 {
				d = -d
			}
			sum += uint32(d)
		}
	}
	return sum
}

// tiledSad sums sadScalar over a grid of tileSide x tileSide tiles
// covering the w x h block: the "vectorized" kernel is selected per
// tile, then tiles are summed.
func tiledSad[T Sample](a, b PlaneRegion[T], w, h, tileSide int) uint32 {
	var sum uint32
	for r := 0; r < h; r += tileSide {
		th := tileSide
		if r+th > h {
			th = h - r
		}
		for c := 0; c < w; c += tileSide {
			tw := tileSide
			if c+tw > w {
				tw = w - c
			}
			sum += sadScalar(tileRegion(a, c, r), tileRegion(b, c, r), tw, th)
		}
	}
	return sum
}

// tileRegion returns a sub-region of r offset by (c, row) within r's
// own coordinate frame.
func tileRegion[T Sample](r PlaneRegion[T], c, row int) PlaneRegion[T] {
	return PlaneRegion[T]{plane: r.plane, originIndex: r.originIndex + row*r.plane.Stride + c}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// largestPowerOfTwoSquareLE returns the largest power-of-two value <=
// min(w, h, cap).
func largestPowerOfTwoSquareLE(w, h, cap int) int {
	v := w
	if h < v {
		v = h
	}
	if cap < v {
		v = cap
	}
	side := 1
	for side*2 <= v {
		side *= 2
	}
	return side
}

// sadHighBitDepth tiles 16-bit samples by the largest power-of-two
// square <= min(w,h), capped at 128 when bit_depth <= 10 and at 4
// otherwise.
func sadHighBitDepth[T Sample](a, b PlaneRegion[T], w, h, bitDepth int) uint32 {
	cap := 4
	if bitDepth <= 10 {
		cap = 128
	}
	tileSide := largestPowerOfTwoSquareLE(w, h, cap)
	return tiledSad(a, b, w, h, tileSide)
}

// avx2DispatchSizes is the set of (w,h) pairs the 256-bit dispatch
// table covers for width >= 16, mirroring the discrete kernel set a
// real AVX2 SAD implementation ships. A (w,h) pair reachable by a
// valid BlockSize but absent here is a dispatch-table gap: a
// programming-error precondition, not a runtime condition.
var avx2DispatchSizes = map[[2]int]bool{
	{16, 4}: true, {16, 8}: true, {16, 16}: true, {16, 32}: true, {16, 64}: true,
	{32, 8}: true, {32, 16}: true, {32, 32}: true, {32, 64}: true,
	{64, 16}: true, {64, 32}: true, {64, 64}: true, {64, 128}: true,
	{128, 64}: true, {128, 128}: true,
}

// sad8 dispatches 8-bit samples: SIMD-keyed tile sizing when a feature
// is present, alignment-aware tile sizing for the width-16 128-bit
// path, scalar fallback otherwise.
func sad8[T Sample](a, b PlaneRegion[T], w, h int) uint32 {
	switch {
	case caps.avx2 && w >= 16:
		mustDispatchKey(avx2DispatchSizes[[2]int{w, h}], w, h)
		return sadScalar(a, b, w, h)

	case caps.avx2 && (w == 4 || w == 8):
		// 128-bit variants serve the narrow widths even under AVX2.
		return sadScalar(a, b, w, h)

	case caps.ssse3 || caps.sse2:
		if w == 16 && h == 16 && a.BasePtr()&15 == 0 {
			return sadScalar(a, b, w, h)
		}
		// Unaligned or non-16x16: tiles sized by the source pointer's
		// trailing-zero alignment, clamped to >= 8 bytes.
		alignLog2 := bits.TrailingZeros64(uint64(a.BasePtr()))
		if alignLog2 < 3 {
			alignLog2 = 3
		} else if alignLog2 > 31 {
			alignLog2 = 31
		}
		ptrAlign := 1 << alignLog2
		tileSide := minInt(w, minInt(h, ptrAlign))
		return tiledSad(a, b, w, h, tileSide)

	default:
		return sadScalar(a, b, w, h)
	}
}
