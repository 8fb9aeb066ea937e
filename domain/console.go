package domain

// Console is the user-facing output sink. It is passed in explicitly rather
// than used as a process-wide singleton so tests can capture output instead
// of printing it.
type Console interface {
	// Printf writes plain output to stdout.
	Printf(format string, args ...interface{})

	// Successf writes a green success line.
	Successf(format string, args ...interface{})

	// Warnf writes a yellow warning line.
	Warnf(format string, args ...interface{})

	// Errorf writes a red error line to stderr.
	Errorf(format string, args ...interface{})
}
