package i

// Logger is the leveled logger used by services.
type Logger interface {
	Info(string)
	Debug(string)
	Warning(string)
	Error(string)
}
