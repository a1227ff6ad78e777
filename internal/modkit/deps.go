package modkit

import (
	"chrono/internal/core/tzdb"
	"chrono/internal/platform/config"
	"chrono/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Zones *tzdb.Provider
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check optional members
func (d Deps) ZeroOK() bool { return true }
