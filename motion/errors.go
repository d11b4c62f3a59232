/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the core's error kinds: missing references
  resolve to a neutral value, not an error; out-of-range candidates
  resolve to MaxCost, not an error; only malformed caller input
  (preconditions) panics.

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

// ErrNoDispatchKey is the panic value when a (w,h) pair has no entry
// in a SIMD kernel's dispatch table — a bug in the caller's block-size
// enumeration, not a runtime condition.
var ErrNoDispatchKey = errors.New("motion: no SIMD dispatch kernel for this block size")

// mustDispatchKey panics with ErrNoDispatchKey, wrapped with the
// offending dimensions, if ok is false.
func mustDispatchKey(ok bool, w, h int) {
	if !ok {
		panic(errors.Wrapf(ErrNoDispatchKey, "w=%d h=%d", w, h))
	}
}
