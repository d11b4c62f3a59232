/*
NAME
  reftype.go

DESCRIPTION
  reftype.go defines RefType, the tagged variant identifying which
  reference frame a search is run against.

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

// RefType identifies a reference frame slot.
type RefType int

const (
	NoneFrame RefType = iota
	LastFrame
	Last2Frame
	Last3Frame
	GoldenFrame
	BwdRefFrame
	AltRef2Frame
	AltRefFrame
)

// ToIndex converts a RefType to its RefFrame-mapping index, or -1 for
// NoneFrame.
func (r RefType) ToIndex() int {
	if r == NoneFrame {
		return -1
	}
	return int(r) - 1
}
