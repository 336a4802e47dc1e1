package logging

// NullLogger discards all log messages. Useful in tests and as a default
// when no logger is supplied.
type NullLogger struct{}

// NewNullLogger creates a NullLogger.
func NewNullLogger() *NullLogger { return &NullLogger{} }

// Verbose discards the message.
func (*NullLogger) Verbose(string, ...interface{}) {}

// Info discards the message.
func (*NullLogger) Info(string, ...interface{}) {}

// Alert discards the message.
func (*NullLogger) Alert(string, ...interface{}) {}
