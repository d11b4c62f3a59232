/*
NAME
  sad_test.go

DESCRIPTION
  sad_test.go is the SAD regression test: a synthetic 640x480 plane
  pair with a known-good SAD value per block size, run for both 8-bit
  and 16-bit samples.

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

import "testing"

func setupSAD[T Sample]() (*Plane[T], *Plane[T]) {
	input := NewPlane[T](640, 480, 136, 136)
	ref := NewPlane[T](640, 480, 136, 136)

	xpadOff := input.XOrigin - input.XPad - 8

	rows := input.Height + 2*input.YPad
	for i := 0; i < rows; i++ {
		for j := 0; j < input.Stride; j++ {
			inVal := (j + i - xpadOff) & 255
			refVal := (j - i - xpadOff) & 255
			input.Data[i*input.Stride+j] = T(inVal)
			ref.Data[i*ref.Stride+j] = T(refVal)
		}
	}
	return input, ref
}

var sadRegressionTable = []struct {
	bsize    BlockSize
	expected uint32
}{
	{Block4x4, 1912},
	{Block4x8, 4296},
	{Block8x4, 3496},
	{Block8x8, 7824},
	{Block8x16, 16592},
	{Block16x8, 14416},
	{Block16x16, 31136},
	{Block16x32, 60064},
	{Block32x16, 59552},
	{Block32x32, 120128},
	{Block32x64, 186688},
	{Block64x32, 250176},
	{Block64x64, 438912},
	{Block64x128, 654272},
	{Block128x64, 1016768},
	{Block128x128, 1689792},
	{Block4x16, 8680},
	{Block16x4, 6664},
	{Block8x32, 31056},
	{Block32x8, 27600},
	{Block16x64, 93344},
	{Block64x16, 116384},
}

func testSADRegression[T Sample](t *testing.T) {
	input, ref := setupSAD[T]()
	const bitDepth = 8

	for _, tc := range sadRegressionTable {
		w, h := tc.bsize.Width(), tc.bsize.Height()
		got := Sad(input.Region(32, 40), ref.Region(32, 40), w, h, bitDepth)
		if got != tc.expected {
			t.Errorf("block %dx%d: got sad=%d, want %d", w, h, got, tc.expected)
		}
	}
}

func TestSADRegressionU8(t *testing.T) {
	testSADRegression[uint8](t)
}

func TestSADRegressionU16(t *testing.T) {
	testSADRegression[uint16](t)
}

func TestSADSymmetry(t *testing.T) {
	input, ref := setupSAD[uint8]()
	for _, tc := range sadRegressionTable {
		w, h := tc.bsize.Width(), tc.bsize.Height()
		ab := Sad(input.Region(32, 40), ref.Region(32, 40), w, h, 8)
		ba := Sad(ref.Region(32, 40), input.Region(32, 40), w, h, 8)
		if ab != ba {
			t.Errorf("block %dx%d: sad(A,B)=%d != sad(B,A)=%d", w, h, ab, ba)
		}
	}
}

func TestSADNonNegativeAndBounded(t *testing.T) {
	input, ref := setupSAD[uint8]()
	for _, tc := range sadRegressionTable {
		w, h := tc.bsize.Width(), tc.bsize.Height()
		got := Sad(input.Region(32, 40), ref.Region(32, 40), w, h, 8)
		max := uint32(255) * uint32(w) * uint32(h)
		if got > max {
			t.Errorf("block %dx%d: sad=%d exceeds bound %d", w, h, got, max)
		}
	}
}

func TestSADZeroWhenIdentical(t *testing.T) {
	input, _ := setupSAD[uint8]()
	got := Sad(input.Region(32, 40), input.Region(32, 40), 16, 16, 8)
	if got != 0 {
		t.Errorf("sad(A,A) = %d, want 0", got)
	}
}
