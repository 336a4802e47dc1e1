package tabex

// Logger provides a pluggable logging interface for conversion and merge
// operations. Implementations must be safe for concurrent use by multiple
// goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Alert logs warnings about skipped or inconsistent input, highlighted
	// on terminals that support it.
	Alert(format string, args ...interface{})
}
