package logging

import (
	"bindcore/deps"
	"fmt"
	"strings"
)

// logger is a global reference to a shared Logger.  It starts out silent so
// the core can be used as a library without ever initializing it.
var logger = newLogger(LogLevelSilent)

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	logger = newLogger(LevelByName(loglevelname))
}

// SetLogLevel changes the log level of the global logger without discarding
// what it has already collected
func SetLogLevel(loglevelname string) {
	logger.m.Lock()
	defer logger.m.Unlock()

	logger.LogLevel = LevelByName(loglevelname)
}

// LevelByName converts a log level name into a log level
func LevelByName(loglevelname string) int {
	switch loglevelname {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warning", "warn":
		return LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		return LogLevelVerbose
	}
}

// ShouldProceed indicates whether or not any errors have been logged
func ShouldProceed() bool {
	logger.m.Lock()
	defer logger.m.Unlock()

	return logger.errorCount == 0
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// ReportCycle logs a dependency cycle found while ordering APIs
func ReportCycle(ce *deps.CycleError) {
	logger.handleMsg(&CycleMessage{Diagnostic: FormatCycle(ce)})
}

// ReportUnsupportedType logs a type expression the analysis cannot handle
func ReportUnsupportedType(apiName deps.QualifiedName, err error) {
	logger.handleMsg(&LimitationMessage{ApiName: apiName.String(), Message: err.Error()})
}

// ReportManifestError logs an error loading a batch manifest
func ReportManifestError(modName string, err error) {
	logger.handleMsg(&ManifestMessage{ModName: modName, Message: err.Error(), IsError: true})
}

// ReportManifestWarning logs a warning from loading a batch manifest
func ReportManifestWarning(modName, msg string) {
	logger.handleMsg(&ManifestMessage{ModName: modName, Message: msg})
}

// FormatCycle renders the diagnostic for a dependency cycle: one line per API
// still waiting to be emitted followed by the dependencies it was waiting on
func FormatCycle(ce *deps.CycleError) string {
	sb := strings.Builder{}
	sb.WriteString("the following APIs depend on each other:")

	for _, item := range ce.Pending {
		unmet := make([]string, len(item.Unmet))
		for i, dep := range item.Unmet {
			unmet[i] = dep.String()
		}

		sb.WriteString(fmt.Sprintf("\n  %s: %s", item.Name, strings.Join(unmet, ",")))
	}

	return sb.String()
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" functions that only run at the verbose log
// level.

// ReportAnalysisHeader displays the version and the batch being analyzed
func ReportAnalysisHeader(modName string, apiCount int) {
	if logger.LogLevel == LogLevelVerbose {
		displayAnalysisHeader(modName, apiCount)
	}
}

// BeginPhase displays the start of an analysis phase
func BeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// EndPhase displays the end of the current analysis phase
func EndPhase(success bool) {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(success)
	}
}

// ReportAnalysisFinished displays all held warnings and the closing message
func ReportAnalysisFinished() {
	logger.m.Lock()
	defer logger.m.Unlock()

	if logger.LogLevel >= LogLevelWarning {
		for _, warning := range logger.warnings {
			warning.display()
		}
	}

	if logger.LogLevel > LogLevelSilent {
		displayAnalysisFinished(logger.errorCount == 0, logger.errorCount, len(logger.warnings))
	}
}
