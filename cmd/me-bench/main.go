/*
NAME
  me-bench

DESCRIPTION
  me-bench runs the motion estimation core over a pair of raw 8-bit
  grayscale frames and reports the per-block MV it converges on,
  optionally plotting the squared magnitude of each block's MV.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements me-bench, a small driver for exercising the
// motion package against real frame data.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/me/motion"
	meconfig "github.com/ausocean/me/motion/config"
	"github.com/ausocean/utils/logging"
)

// Logging configuration, matching cmd/rv and cmd/looper's conventions.
const (
	logPath      = "me-bench.log"
	logMaxSize   = 50 // MB
	logMaxBackup = 3
	logMaxAge    = 7 // days
	logVerbosity = logging.Debug
	logSuppress  = false
)

const (
	xpad = 32
	ypad = 32
)

func main() {
	framePtr := flag.String("a", "", "path to the raw 8-bit grayscale current frame")
	refPtr := flag.String("b", "", "path to the raw 8-bit grayscale reference frame")
	widthPtr := flag.Int("width", 640, "frame width in pixels")
	heightPtr := flag.Int("height", 480, "frame height in pixels")
	blockPtr := flag.Int("block", 16, "square block size in pixels (16, 32 or 64)")
	configPtr := flag.String("config", "", "optional path to a motion estimation config JSON file")
	plotPtr := flag.String("plot", "", "optional path to write a per-block MV magnitude scatter PNG to")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stdout), logSuppress)
	motion.Log = l

	cfg := meconfig.New(l)
	if *configPtr != "" {
		var err error
		cfg, err = meconfig.Load(*configPtr, l)
		if err != nil {
			l.Fatal("could not load config", "error", err)
		}
	}

	if *framePtr == "" || *refPtr == "" {
		l.Fatal("both -a and -b frame paths are required")
	}

	cur, err := loadPlane(*framePtr, *widthPtr, *heightPtr)
	if err != nil {
		l.Fatal("could not load current frame", "error", err)
	}
	ref, err := loadPlane(*refPtr, *widthPtr, *heightPtr)
	if err != nil {
		l.Fatal("could not load reference frame", "error", err)
	}

	bsize, err := blockSizeFor(*blockPtr)
	if err != nil {
		l.Fatal("unsupported block size", "error", err)
	}

	rec := &motion.ReferenceFrame[uint8]{
		Frame:     ref,
		InputHres: motion.Downscale2x(ref),
		InputQres: motion.Downscale4x(ref),
	}

	fi := &motion.FrameInvariants[uint8]{
		BitDepth:             cfg.BitDepth,
		AllowHighPrecisionMV: cfg.AllowHighPrecisionMV,
		MELambda:             cfg.MELambda,
		MERangeScale:         cfg.MERangeScale,
		WInB:                 *widthPtr / motion.MISize,
		HInB:                 *heightPtr / motion.MISize,
		RefFrames:            [8]int{int(motion.LastFrame) - 1: 0},
		RecBuffer:            motion.RecBuffer[uint8]{Frames: []*motion.ReferenceFrame[uint8]{rec}},
	}

	ts := &benchTileState{
		input: cur,
		hres:  motion.Downscale2x(cur),
		qres:  motion.Downscale4x(cur),
		miW:   fi.WInB,
		miH:   fi.HInB,
	}
	pred := nearestPredictor[uint8]{}
	strategy := motion.DiamondStrategy[uint8]{}

	blkW, blkH := bsize.Width(), bsize.Height()
	colsInB := blkW / motion.MISize
	rowsInB := blkH / motion.MISize

	type result struct {
		bo BlockOffsetLabel
		mv motion.MotionVector
	}
	var results []result

	for by := 0; by+rowsInB <= fi.HInB; by += rowsInB {
		for bx := 0; bx+colsInB <= fi.WInB; bx += colsInB {
			tileBo := motion.BlockOffset{X: bx, Y: by}
			mv := motion.MotionEstimation[uint8](strategy, fi, ts, pred, bsize, tileBo, motion.LastFrame, motion.MotionVector{}, [2]motion.MotionVector{{}, {}})
			l.Info("block motion estimate", "x", bx, "y", by, "row", mv.Row, "col", mv.Col)
			results = append(results, result{bo: BlockOffsetLabel{X: bx, Y: by}, mv: mv})
		}
	}

	fmt.Printf("estimated %d blocks of size %dx%d\n", len(results), blkW, blkH)

	if *plotPtr == "" {
		return
	}

	pts := make(plotter.XYs, len(results))
	for i, r := range results {
		pts[i].X = float64(i)
		pts[i].Y = float64(r.mv.Col)*float64(r.mv.Col) + float64(r.mv.Row)*float64(r.mv.Row)
	}

	p := plot.New()
	p.Title.Text = "per-block motion vector magnitude"
	p.X.Label.Text = "block index"
	p.Y.Label.Text = "|mv|^2 (eighth-pel units)"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		l.Fatal("could not build scatter plot", "error", err)
	}
	p.Add(scatter)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, *plotPtr); err != nil {
		l.Fatal("could not save plot", "error", err)
	}
}

// BlockOffsetLabel is a plain (x,y) pair for reporting, independent of
// motion.BlockOffset so this file doesn't need to import it twice.
type BlockOffsetLabel struct{ X, Y int }

func blockSizeFor(side int) (motion.BlockSize, error) {
	switch side {
	case 16:
		return motion.Block16x16, nil
	case 32:
		return motion.Block32x32, nil
	case 64:
		return motion.Block64x64, nil
	default:
		return 0, fmt.Errorf("block size %d not supported, use 16, 32 or 64", side)
	}
}

func loadPlane(path string, width, height int) (*motion.Plane[uint8], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%s: expected %d bytes for %dx%d, got %d", path, width*height, width, height, len(data))
	}

	p := motion.NewPlane[uint8](width, height, xpad, ypad)
	region := p.Region(0, 0)
	for y := 0; y < height; y++ {
		copy(region.Row(y, width), data[y*width:(y+1)*width])
	}
	return p, nil
}

// benchTileState is a single-tile TileState spanning the whole frame,
// good enough for a benchmark driver that never partitions into tiles.
type benchTileState struct {
	input, hres, qres *motion.Plane[uint8]
	miW, miH          int
}

func (ts *benchTileState) ToFrameBlockOffset(bo motion.BlockOffset) motion.BlockOffset { return bo }
func (ts *benchTileState) InputPlane() *motion.Plane[uint8]                            { return ts.input }
func (ts *benchTileState) InputHres() *motion.Plane[uint8]                             { return ts.hres }
func (ts *benchTileState) InputQres() *motion.Plane[uint8]                             { return ts.qres }
func (ts *benchTileState) MVs(int) *motion.FrameMotionVectors {
	return motion.NewFrameMotionVectors(ts.miW, ts.miH)
}
func (ts *benchTileState) MIWidth() int  { return ts.miW }
func (ts *benchTileState) MIHeight() int { return ts.miH }

// nearestPredictor is a minimal InterPredictor: it truncates each MV
// toward zero to a whole pel and copies the reference block directly,
// skipping the sub-pel interpolation filter a real encoder would
// apply (out of scope for this module, per its interfaces).
type nearestPredictor[T motion.Sample] struct{}

func (nearestPredictor[T]) PredictInter(
	fi *motion.FrameInvariants[T], po motion.PlaneOffset, dst *motion.Plane[T],
	blkW, blkH int, refs [2]motion.RefType, mvs [2]motion.MotionVector,
) error {
	if refs[0] == motion.NoneFrame {
		return fmt.Errorf("me-bench: nearestPredictor requires a reference frame")
	}
	rec := fi.RecBuffer.Frames[fi.RefFrames[refs[0].ToIndex()]]
	if rec == nil {
		return fmt.Errorf("me-bench: reference frame absent")
	}

	mv := mvs[0].QuantizeToFullpel()
	src := rec.Frame.Region(po.X+int(mv.Col)/8, po.Y+int(mv.Row)/8)
	return motion.CopyBlockFrom(dst, src, blkW, blkH)
}
