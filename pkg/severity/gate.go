package severity

// Console is the sink the gate forwards to.
type Console interface {
	Log(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debug(args ...any)
	Group(title string)
	GroupEnd()
}

type Gate interface {
	Level() Level
	SetLevel(name string) bool
	Emit(min Level, sink func(args ...any), args ...any)

	Log(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debug(args ...any)

	Group(title string)
	GroupEnd()
}
