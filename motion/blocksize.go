/*
NAME
  blocksize.go

DESCRIPTION
  blocksize.go enumerates the rectangular block sizes the motion
  estimation core operates on.

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

// BlockSize identifies a rectangular prediction block shape, from
// 4x4 up to 128x128, including the 1:2, 1:4, 2:1 and 4:1 aspect
// ratios AV1-style partitioning uses.
type BlockSize int

const (
	Block4x4 BlockSize = iota
	Block4x8
	Block8x4
	Block8x8
	Block8x16
	Block16x8
	Block16x16
	Block16x32
	Block32x16
	Block32x32
	Block32x64
	Block64x32
	Block64x64
	Block64x128
	Block128x64
	Block128x128
	Block4x16
	Block16x4
	Block8x32
	Block32x8
	Block16x64
	Block64x16
)

var blockDims = map[BlockSize][2]int{
	Block4x4:     {4, 4},
	Block4x8:     {4, 8},
	Block8x4:     {8, 4},
	Block8x8:     {8, 8},
	Block8x16:    {8, 16},
	Block16x8:    {16, 8},
	Block16x16:   {16, 16},
	Block16x32:   {16, 32},
	Block32x16:   {32, 16},
	Block32x32:   {32, 32},
	Block32x64:   {32, 64},
	Block64x32:   {64, 32},
	Block64x64:   {64, 64},
	Block64x128:  {64, 128},
	Block128x64:  {128, 64},
	Block128x128: {128, 128},
	Block4x16:    {4, 16},
	Block16x4:    {16, 4},
	Block8x32:    {8, 32},
	Block32x8:    {32, 8},
	Block16x64:   {16, 64},
	Block64x16:   {64, 16},
}

// Width returns the block's width in pixels.
func (b BlockSize) Width() int { return blockDims[b][0] }

// Height returns the block's height in pixels.
func (b BlockSize) Height() int { return blockDims[b][1] }
