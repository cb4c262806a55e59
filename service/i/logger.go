package i

// Logger writes levelled messages for a single component.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
