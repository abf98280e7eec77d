package core

// Logger is any leveled logger that can report to an error tracker.
// Extra args may carry an error, a map of context values or the acting user.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
