/*
NAME
  rate.go

DESCRIPTION
  rate.go implements the MV-rate model: a rate proxy for the
  variable-length code that would encode the difference between a
  candidate MV and a predictor.

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

// MVRate returns the rate proxy for encoding a relative to predictor b,
// at full (hp true) or half (hp false) precision.
func MVRate(a, b MotionVector, hp bool) uint32 {
	return componentRate(a.Row-b.Row, hp) + componentRate(a.Col-b.Col, hp)
}

// componentRate approximates the bit cost of encoding a single MV
// component difference: roughly twice the position of its highest set
// bit, the shape of an Exp-Golomb-like code.
func componentRate(diff int16, hp bool) uint32 {
	d := diff
	if !hp {
		d = diff >> 1
	}
	if d == 0 {
		return 0
	}
	abs := d
	if abs < 0 {
		abs = -abs
	}
	return 2 * uint32(16-bits.LeadingZeros16(uint16(abs)))
}
