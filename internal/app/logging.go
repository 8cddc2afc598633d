package app

import (
	"sort"

	logging "github.com/ipfs/go-log/v2"

	"github.com/petervdpas/folio/internal/config"
)

var log = logging.Logger("folio/app")

// subsystems are the loggers the level applies to. Third-party loggers
// registered through go-log keep their own level.
var subsystems = []string{
	"folio/app",
	"folio/editor",
	"folio/portfolio",
	"folio/viewer",
	"folio/workspace",
}

// SetupLogging applies the configured level to every folio subsystem, then
// the per-subsystem overrides.
func SetupLogging(c config.Log) {
	level := c.Level
	if _, err := logging.LevelFromString(level); err != nil {
		level = "info"
	}
	for _, name := range subsystems {
		_ = logging.SetLogLevel(name, level)
	}

	names := make([]string, 0, len(c.Subsystems))
	for name := range c.Subsystems {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := logging.SetLogLevel(name, c.Subsystems[name]); err != nil {
			log.Warnf("log level %s=%s: %v", name, c.Subsystems[name], err)
		}
	}
}
