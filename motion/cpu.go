/*
NAME
  cpu.go

DESCRIPTION
  cpu.go probes the process-global CPU capability set the SAD dispatch
  layer keys its vectorized-variant selection on. The probe runs once,
  at package init, and is immutable thereafter.

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

import "golang.org/x/sys/cpu"

// capabilities is the probed set of SIMD features available to the SAD
// dispatch. It is populated once by detectCapabilities() at init and
// never mutated afterward.
type capabilities struct {
	sse2  bool
	ssse3 bool
	avx2  bool
	neon  bool
}

var caps = detectCapabilities()

func detectCapabilities() capabilities {
	return capabilities{
		sse2:  cpu.X86.HasSSE2,
		ssse3: cpu.X86.HasSSSE3,
		avx2:  cpu.X86.HasAVX2,
		neon:  cpu.ARM64.HasASIMD,
	}
}
