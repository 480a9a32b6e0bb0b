package i

// Logger is a leveled logger. Extra arguments are key-value pairs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warning(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
