/*
NAME
  diamond_test.go

DESCRIPTION
  diamond_test.go exercises the full-pel diamond search against two
  baseline scenarios: identical planes converge to the zero MV, and a
  pure one-pixel translation converges to the matching MV with zero
  residual SAD.

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

func fillRamp(p *Plane[uint8], colShift int) {
	rows := p.Height + 2*p.YPad
	for i := 0; i < rows; i++ {
		for j := 0; j < p.Stride; j++ {
			v := ((j-colShift)*31 + i*17) & 255
			p.Data[i*p.Stride+j] = uint8(v)
		}
	}
}

func wideMVRange() MVRange {
	return MVRange{XMin: -10000, XMax: 10000, YMin: -10000, YMax: 10000}
}

func TestDiamondSearchIdenticalPlanesConvergeToZero(t *testing.T) {
	org := NewPlane[uint8](64, 64, 16, 16)
	fillRamp(org, 0)

	fi := &FrameInvariants[uint8]{BitDepth: 8, AllowHighPrecisionMV: true}
	po := PlaneOffset{X: 32, Y: 32}
	predictors := []MotionVector{{}}

	mv, cost := DiamondSearch[uint8](fi, nil, po, org, org, predictors, 8, [2]MotionVector{{}, {}}, 10, wideMVRange(), 8, 8, LastFrame, false)

	if mv != (MotionVector{}) {
		t.Errorf("DiamondSearch on identical planes = %v, want zero MV", mv)
	}
	if cost != 0 {
		t.Errorf("DiamondSearch on identical planes cost = %d, want 0", cost)
	}
}

func TestDiamondSearchTranslationConverges(t *testing.T) {
	org := NewPlane[uint8](64, 64, 16, 16)
	ref := NewPlane[uint8](64, 64, 16, 16)
	fillRamp(org, 0)
	// ref(u,v) = org(u-1,v): the scene has moved one pixel in +x.
	fillRamp(ref, 1)

	fi := &FrameInvariants[uint8]{BitDepth: 8, AllowHighPrecisionMV: true}
	po := PlaneOffset{X: 32, Y: 32}
	predictors := []MotionVector{{}}

	mv, _ := DiamondSearch[uint8](fi, nil, po, org, ref, predictors, 8, [2]MotionVector{{}, {}}, 10, wideMVRange(), 8, 8, LastFrame, false)

	want := MotionVector{Row: 0, Col: 8}
	if mv != want {
		t.Errorf("DiamondSearch on +1px translation = %v, want %v", mv, want)
	}

	orgRegion := org.Region(po.X, po.Y)
	refRegion := ref.Region(po.X+int(mv.Col)/8, po.Y+int(mv.Row)/8)
	if sad := Sad(orgRegion, refRegion, 8, 8, 8); sad != 0 {
		t.Errorf("residual SAD at converged MV = %d, want 0", sad)
	}
}

func TestDiamondSearchPostconditionCostBelowMax(t *testing.T) {
	org := NewPlane[uint8](64, 64, 16, 16)
	ref := NewPlane[uint8](64, 64, 16, 16)
	fillRamp(org, 0)
	fillRamp(ref, 1)

	fi := &FrameInvariants[uint8]{BitDepth: 8, AllowHighPrecisionMV: true}
	po := PlaneOffset{X: 32, Y: 32}
	predictors := []MotionVector{{}}

	_, cost := DiamondSearch[uint8](fi, nil, po, org, ref, predictors, 8, [2]MotionVector{{}, {}}, 10, wideMVRange(), 8, 8, LastFrame, false)
	if cost >= MaxCost {
		t.Errorf("DiamondSearch returned MaxCost, violating its postcondition")
	}
}
