package lantern

import (
	"fmt"
	"log/slog"
	"time"
)

// contract reports programming-contract violations. In debug mode a
// violation panics; in release mode it is logged and the caller applies its
// documented fallback.
type contract struct {
	debug bool
	log   *slog.Logger
}

// violated reports a broken contract for op. It returns only in release
// mode.
func (c *contract) violated(op, format string, args ...any) {
	if c == nil {
		return
	}
	detail := fmt.Sprintf(format, args...)
	if c.debug {
		panic(fmt.Sprintf("lantern debug: %s: %s", op, detail))
	}
	if c.log != nil {
		c.log.Warn("contract violation", "op", op, "detail", detail)
	}
}

// frameStats holds per-frame timing and sweep counts. Only populated when
// the stage is in debug mode.
type frameStats struct {
	dispatchTime time.Duration
	doItTime     time.Duration
	wakeTime     time.Duration
	planes       int
	doIts        int
	woken        int
}

// debugLog writes the frame statistics at debug level.
func (s *Stage) debugLog(stats frameStats) {
	if !s.contract.debug {
		return
	}
	s.log.Debug("frame",
		"frame", s.frame,
		"dispatch", stats.dispatchTime,
		"doit", stats.doItTime,
		"wake", stats.wakeTime,
		"planes", stats.planes,
		"doits", stats.doIts,
		"woken", stats.woken,
	)
}

// debugMaxCastSize is the member count above which a cast warns once.
const debugMaxCastSize = 1000

func (c *Cast) debugCheckSize() {
	if c.warnedSize || c.contract == nil || !c.contract.debug {
		return
	}
	if n := c.members.len(); n > debugMaxCastSize {
		c.warnedSize = true
		if c.contract.log != nil {
			c.contract.log.Warn("cast is large", "plane", c.name, "members", n, "threshold", debugMaxCastSize)
		}
	}
}
