/*
NAME
  logging.go

DESCRIPTION
  logging.go exposes the package-level logger the core uses to report
  missing-reference diagnostics, in the style of
  codec/jpeg.Log and protocol/rtcp.Client's logger field.

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

import "github.com/ausocean/utils/logging"

// Log is the package-level logger. Callers should set this before
// using the package if they want diagnostics; a nil Log is valid and
// simply means no logging occurs.
var Log logging.Logger

func logDebug(msg string, params ...interface{}) {
	if Log != nil {
		Log.Debug(msg, params...)
	}
}
