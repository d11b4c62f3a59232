//go:build withcv

/*
NAME
  downscale_cv.go

DESCRIPTION
  downscale_cv.go builds the half- and quarter-resolution luma planes
  via gocv.Resize with area-average interpolation, matching
  libaom/rav1e's coarse-pass decimation more closely than a naive box
  filter. Mirrors filter/motion.go's //go:build withcv convention for
  keeping the gocv (cgo) dependency opt-in.

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

import (
	"image"
	"unsafe"

	"gocv.io/x/gocv"
)

// planeBytes views a visible-region copy of src as a contiguous byte
// slice for handoff to gocv, since Plane's backing array may be padded
// and strided.
func planeBytes[T Sample](src *Plane[T]) []byte {
	region := src.Region(0, 0)
	var zero T
	sampleSize := int(unsafe.Sizeof(zero))
	out := make([]byte, src.Width*src.Height*sampleSize)
	for y := 0; y < src.Height; y++ {
		row := region.Row(y, src.Width)
		dst := out[y*src.Width*sampleSize : (y+1)*src.Width*sampleSize]
		for x, v := range row {
			writeSample(dst[x*sampleSize:], v)
		}
	}
	return out
}

func writeSample[T Sample](dst []byte, v T) {
	switch sample := any(v).(type) {
	case uint8:
		dst[0] = sample
	case uint16:
		dst[0] = byte(sample)
		dst[1] = byte(sample >> 8)
	}
}

// writePlaneBytes copies a dense byte buffer (as produced by gocv) back
// into dst's strided visible region.
func writePlaneBytes[T Sample](dst *Plane[T], region PlaneRegion[T], bytes []byte) {
	var zero T
	sampleSize := int(unsafe.Sizeof(zero))
	for y := 0; y < dst.Height; y++ {
		srcRow := bytes[y*dst.Width*sampleSize : (y+1)*dst.Width*sampleSize]
		for x := 0; x < dst.Width; x++ {
			dst.Data[region.originIndex+y*dst.Stride+x] = readSample[T](srcRow[x*sampleSize:])
		}
	}
}

func readSample[T Sample](src []byte) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(src[0])
	case uint16:
		return T(uint16(src[0]) | uint16(src[1])<<8)
	}
	return zero
}

// Downscale2x returns a plane half the width and height of src, via
// gocv.Resize with area-average interpolation.
func Downscale2x[T Sample](src *Plane[T]) *Plane[T] {
	return cvDownscale(src, 2)
}

// Downscale4x returns a plane a quarter the width and height of src.
func Downscale4x[T Sample](src *Plane[T]) *Plane[T] {
	return cvDownscale(src, 4)
}

func cvDownscale[T Sample](src *Plane[T], factor int) *Plane[T] {
	var zero T
	matType := gocv.MatTypeCV8U
	if _, is16 := any(zero).(uint16); is16 {
		matType = gocv.MatTypeCV16U
	}

	srcMat, err := gocv.NewMatFromBytes(src.Height, src.Width, matType, planeBytes(src))
	if err != nil {
		panic(err)
	}
	defer srcMat.Close()

	dstW, dstH := src.Width/factor, src.Height/factor
	dstMat := gocv.NewMat()
	defer dstMat.Close()
	gocv.Resize(srcMat, &dstMat, image.Pt(dstW, dstH), 0, 0, gocv.InterpolationArea)

	dst := NewPlane[T](dstW, dstH, src.XPad/factor, src.YPad/factor)
	dstRegion := dst.Region(0, 0)
	bytes := dstMat.ToBytes()
	writePlaneBytes(dst, dstRegion, bytes)
	return dst
}
