//go:build !withcv

/*
NAME
  downscale.go

DESCRIPTION
  downscale.go builds the half- and quarter-resolution luma planes a
  ReferenceFrame needs for the multi-resolution coarse passes (spec
  §4.8), using a simple box filter. This is the default, cgo-free
  build; see downscale_cv.go for the gocv.Resize alternative built
  with -tags withcv.

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

// Downscale2x returns a plane half the width and height of src,
// computed as the 2x2 box average of each sample group.
func Downscale2x[T Sample](src *Plane[T]) *Plane[T] {
	return boxDownscale(src, 2)
}

// Downscale4x returns a plane a quarter the width and height of src.
func Downscale4x[T Sample](src *Plane[T]) *Plane[T] {
	return boxDownscale(src, 4)
}

func boxDownscale[T Sample](src *Plane[T], factor int) *Plane[T] {
	dstW := src.Width / factor
	dstH := src.Height / factor
	dst := NewPlane[T](dstW, dstH, src.XPad/factor, src.YPad/factor)

	srcRegion := src.Region(0, 0)
	dstRegion := dst.Region(0, 0)
	n := factor * factor

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			var sum int
			for dy := 0; dy < factor; dy++ {
				row := srcRegion.Row(y*factor+dy, dstW*factor)
				for dx := 0; dx < factor; dx++ {
					sum += int(row[x*factor+dx])
				}
			}
			dst.Data[dstRegion.originIndex+y*dst.Stride+x] = T(sum / n)
		}
	}
	return dst
}
