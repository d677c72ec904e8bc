// Package corelog is the engine's logging facade: module-tagged,
// level-gated wrappers around apex/log, grounded on the corpus's own
// core/logger.go convention of "[module]: message" lines.
package corelog

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

var level = log.InfoLevel

// shouldPrintTrace works around apex/log having no native TRACE level:
// TRACE is logged as DEBUG but suppressed unless explicitly enabled.
var shouldPrintTrace = false

func init() {
	log.SetHandler(text.New(os.Stderr))
}

// SetLevel parses one of TRACE/DEBUG/INFO/WARN/ERROR/FATAL and configures
// the logger accordingly.
func SetLevel(levelName string) {
	if levelName == "TRACE" {
		level = log.DebugLevel
		shouldPrintTrace = true
		log.SetLevel(level)
		return
	}
	parsed, err := log.ParseLevel(levelName)
	if err != nil {
		parsed = log.InfoLevel
	}
	level = parsed
	shouldPrintTrace = false
	log.SetLevel(level)
}

func tag(module any) string {
	return fmt.Sprintf("[%v]", module)
}

// Trace logs a TRACE-level message, tagged with module. Only emitted when
// SetLevel("TRACE") has been called.
func Trace(module any, message string) {
	if shouldPrintTrace {
		log.Debug(tag(module) + ": " + message)
	}
}

// Debug logs a DEBUG-level message, tagged with module.
func Debug(module any, message string) {
	if level <= log.DebugLevel {
		log.Debug(tag(module) + ": " + message)
	}
}

// Info logs an INFO-level message, tagged with module.
func Info(module any, message string) {
	if level <= log.InfoLevel {
		log.Info(tag(module) + ": " + message)
	}
}

// Warn logs a WARN-level message, tagged with module.
func Warn(module any, message string) {
	if level <= log.WarnLevel {
		log.Warn(tag(module) + ": " + message)
	}
}

// Error logs an ERROR-level message, tagged with module.
func Error(module any, message string) {
	if level <= log.ErrorLevel {
		log.Error(tag(module) + ": " + message)
	}
}
