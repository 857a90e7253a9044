package logging

import (
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// analysis as necessary
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// warnings is a list of all warnings to be logged at the end of analysis
	warnings []LogMessage

	// m is the mutex used to synchonize the printing of messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, version, phase progress, closing message (DEFAULT)
)

// LogMessage is a message that the logger can display
type LogMessage interface {
	display()
	isError() bool
}

// newLogger creates a new logger struct
func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts to logger to process a message.  Errors are displayed
// right away; warnings are held until the analysis finishes.
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warnings = append(l.warnings, lm)
	}
}

// -----------------------------------------------------------------------------

// CycleMessage reports a dependency cycle between APIs
type CycleMessage struct {
	Diagnostic string
}

func (cm *CycleMessage) isError() bool { return true }

// LimitationMessage reports that an internal limitation of the analysis was
// hit: this is not a problem in the user's API
type LimitationMessage struct {
	ApiName string
	Message string
}

func (lm *LimitationMessage) isError() bool { return true }

// ManifestMessage is an error or warning related to a batch manifest
type ManifestMessage struct {
	ModName string
	Message string
	IsError bool
}

func (mm *ManifestMessage) isError() bool { return mm.IsError }
