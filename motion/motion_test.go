/*
NAME
  motion_test.go

DESCRIPTION
  motion_test.go checks MotionEstimation's missing-reference handling:
  a reference frame absent from RecBuffer resolves to the zero MV, not
  an error.

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

func TestMotionEstimationMissingReferenceReturnsZeroMV(t *testing.T) {
	fi := &FrameInvariants[uint8]{
		BitDepth: 8,
		WInB:     32,
		HInB:     32,
		RefFrames: [8]int{
			int(LastFrame) - 1: 0,
		},
		RecBuffer: RecBuffer[uint8]{Frames: []*ReferenceFrame[uint8]{nil}},
	}

	got := MotionEstimation[uint8](nil, fi, nil, nil, Block16x16, BlockOffset{X: 4, Y: 4}, LastFrame, MotionVector{}, [2]MotionVector{{}, {}})
	if !got.IsZero() {
		t.Errorf("MotionEstimation with absent reference = %v, want zero MV", got)
	}
}

func TestEstimateMotionSS4MissingReferenceReturnsNil(t *testing.T) {
	fi := &FrameInvariants[uint8]{
		BitDepth:  8,
		WInB:      32,
		HInB:      32,
		RecBuffer: RecBuffer[uint8]{Frames: []*ReferenceFrame[uint8]{nil}},
	}
	got := EstimateMotionSS4[uint8](fi, fakeTileState{}, Block16x16, 0, BlockOffset{X: 4, Y: 4})
	if got != nil {
		t.Errorf("EstimateMotionSS4 with absent reference = %v, want nil", got)
	}
}

// fakeTileState is a minimal TileState good enough to exercise the
// absent-reference early return, which never calls its methods.
type fakeTileState struct{}

func (fakeTileState) ToFrameBlockOffset(bo BlockOffset) BlockOffset { return bo }
func (fakeTileState) InputPlane() *Plane[uint8]                     { return nil }
func (fakeTileState) InputHres() *Plane[uint8]                      { return nil }
func (fakeTileState) InputQres() *Plane[uint8]                      { return nil }
func (fakeTileState) MVs(int) *FrameMotionVectors                   { return nil }
func (fakeTileState) MIWidth() int                                  { return 8 }
func (fakeTileState) MIHeight() int                                 { return 8 }
