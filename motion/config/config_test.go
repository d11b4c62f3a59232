/*
NAME
  config_test.go

DESCRIPTION
  config_test.go tests Config's Validate defaulting and Load's
  JSON-decode-then-validate behavior.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type dumbLogger struct{}

func (dl *dumbLogger) Log(l int8, m string, a ...interface{})  {}
func (dl *dumbLogger) SetLevel(l int8)                         {}
func (dl *dumbLogger) Debug(msg string, args ...interface{})   {}
func (dl *dumbLogger) Info(msg string, args ...interface{})    {}
func (dl *dumbLogger) Warning(msg string, args ...interface{}) {}
func (dl *dumbLogger) Error(msg string, args ...interface{})   {}
func (dl *dumbLogger) Fatal(msg string, args ...interface{})   {}

func TestValidateDefaultsZeroConfig(t *testing.T) {
	dl := &dumbLogger{}
	// Validate cannot tell an unset bool from an explicit false, so
	// AllowHighPrecisionMV keeps the zero Config's false; only New (and
	// so Load) applies DefaultAllowHighPrecisionMV.
	want := Config{
		MELambda:             DefaultMELambda,
		MERangeScale:         DefaultMERangeScale,
		BitDepth:             DefaultBitDepth,
		AllowHighPrecisionMV: false,
		Logger:               dl,
	}

	got := Config{Logger: dl}
	if err := got.Validate(); err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	if !cmp.Equal(got, want) {
		t.Errorf("configs not equal\nwant: %+v\ngot: %+v", want, got)
	}
}

func TestValidateDefaultsInvalidBitDepth(t *testing.T) {
	dl := &dumbLogger{}
	got := Config{MELambda: 2.0, MERangeScale: 1, BitDepth: 7, Logger: dl}
	if err := got.Validate(); err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if got.BitDepth != DefaultBitDepth {
		t.Errorf("BitDepth = %d, want default %d", got.BitDepth, DefaultBitDepth)
	}
	if got.MELambda != 2.0 {
		t.Errorf("MELambda = %v, want preserved value 2.0", got.MELambda)
	}
}

func TestValidateAcceptsSupportedBitDepths(t *testing.T) {
	for _, bd := range []int{8, 10, 12} {
		c := Config{MELambda: 1, MERangeScale: 1, BitDepth: bd}
		if err := c.Validate(); err != nil {
			t.Fatalf("did not expect error for bit depth %d: %v", bd, err)
		}
		if c.BitDepth != bd {
			t.Errorf("BitDepth = %d, want preserved %d", c.BitDepth, bd)
		}
	}
}

func TestLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "me.json")
	const body = `{"me_lambda": 2.5, "me_range_scale": 2, "bit_depth": 10, "allow_high_precision_mv": false}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{MELambda: 2.5, MERangeScale: 2, BitDepth: 10, AllowHighPrecisionMV: false}
	if !cmp.Equal(got, want) {
		t.Errorf("configs not equal\nwant: %+v\ngot: %+v", want, got)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), nil)
	if err == nil {
		t.Error("expected error loading a nonexistent file")
	}
}
