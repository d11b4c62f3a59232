/*
NAME
  plane.go

DESCRIPTION
  plane.go provides Plane, a padded strided 2D sample buffer, and
  PlaneRegion, a view over part of one.

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

import "github.com/pkg/errors"

// Sample is the set of luma sample widths the core supports: 8-bit for
// bit_depth 8, 16-bit for bit_depth 10/12.
type Sample interface {
	~uint8 | ~uint16
}

// Plane is a padded, row-major sample buffer for one luma plane at one
// resolution (full, half or quarter).
type Plane[T Sample] struct {
	Data   []T
	Stride int
	Width  int
	Height int

	// XOrigin, YOrigin locate pixel (0,0) within Data; XPad, YPad are
	// the border widths reserved for out-of-frame motion search reach.
	XOrigin, YOrigin int
	XPad, YPad       int
}

// NewPlane allocates a plane of width x height visible pixels with the
// given padding on every edge.
func NewPlane[T Sample](width, height, xpad, ypad int) *Plane[T] {
	stride := width + 2*xpad
	rows := height + 2*ypad
	return &Plane[T]{
		Data:    make([]T, stride*rows),
		Stride:  stride,
		Width:   width,
		Height:  height,
		XOrigin: xpad,
		YOrigin: ypad,
		XPad:    xpad,
		YPad:    ypad,
	}
}

// BasePtr returns the address of the first visible sample, used to key
// SAD dispatch on source pointer alignment.
func (p *Plane[T]) BasePtr() uintptr {
	return samplePtr(p.Data, p.YOrigin*p.Stride+p.XOrigin)
}

// Region returns a PlaneRegion view starting at the given pixel offset
// (relative to the plane's visible origin).
func (p *Plane[T]) Region(x, y int) PlaneRegion[T] {
	return PlaneRegion[T]{
		plane: p,
		originIndex: (p.YOrigin+y)*p.Stride + p.XOrigin + x,
	}
}

// PlaneRegion is a view over a rectangular area of a Plane, anchored at
// an arbitrary (possibly negative, within padding) pixel offset.
type PlaneRegion[T Sample] struct {
	plane       *Plane[T]
	originIndex int
}

// Stride returns the row stride, in samples, of the underlying plane.
func (r PlaneRegion[T]) Stride() int { return r.plane.Stride }

// Row returns the w samples of row i (0-based from the region's
// origin).
func (r PlaneRegion[T]) Row(i, w int) []T {
	start := r.originIndex + i*r.plane.Stride
	return r.plane.Data[start : start+w]
}

// BasePtr returns the address of the region's origin sample.
func (r PlaneRegion[T]) BasePtr() uintptr {
	return samplePtr(r.plane.Data, r.originIndex)
}

// CopyBlockFrom fills dst (blkW x blkH) from src starting at src's
// region origin. Used by sub-pel refinement to stage synthesized
// reference samples alongside a same-shaped scratch plane.
func CopyBlockFrom[T Sample](dst *Plane[T], src PlaneRegion[T], blkW, blkH int) error {
	if dst.Width < blkW || dst.Height < blkH {
		return errors.Errorf("motion: scratch plane %dx%d too small for %dx%d block", dst.Width, dst.Height, blkW, blkH)
	}
	dstRegion := dst.Region(0, 0)
	for row := 0; row < blkH; row++ {
		copy(dstRegion.Row(row, blkW), src.Row(row, blkW))
	}
	return nil
}
