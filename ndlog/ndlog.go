// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ndlog is the ambient structured logger shared by every ndimage
// package. It never drives control flow -- errors are always returned via
// errs.Error -- it only records recoverable conditions worth a developer's
// attention (currently Image.Reforge's buffer reuse).
package ndlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger, configured the way
// itohio-EasyRobot/pkg/logger wires zerolog: caller info plus a
// console writer on stderr.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
