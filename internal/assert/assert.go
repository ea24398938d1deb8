// Package assert reports violated internal invariants. Debug builds
// (-tags textydebug) panic; release builds log the violation and let the
// caller fall back.
package assert

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Fatal controls whether a failed assertion panics. It defaults to true in
// builds tagged textydebug.
var Fatal = debugBuild

// That checks cond and reports the formatted message when it is false. The
// return value is cond, so callers can take a release-mode fallback:
//
//	if !assert.That(ok, "value for %s has wrong type", key) {
//		return
//	}
func That(cond bool, format string, args ...interface{}) bool {
	if cond {
		return true
	}

	msg := fmt.Sprintf(format, args...)
	if Fatal {
		panic("texty: " + msg)
	}
	log.Error().Str("component", "assert").Msg(msg)
	return false
}
