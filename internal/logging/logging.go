// Package logging adapts fortio.org/log's package-level logger to the
// render core's small Logger interface.
package logging

import (
	fortiolog "fortio.org/log"
)

// Fortio implements core.Logger on top of fortio.org/log's structured,
// leveled logger.
type Fortio struct{}

func (Fortio) Printf(format string, args ...interface{}) {
	fortiolog.Infof(format, args...)
}
