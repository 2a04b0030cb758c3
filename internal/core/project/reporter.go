package project

// Reporter receives progress notifications from the Scaffolder.
type Reporter interface {
	// Info prints a standalone message. Used before steps that hand the
	// terminal to a child process.
	Info(msg string)
	// StepStart marks the beginning of a setup step.
	StepStart(title string)
	// StepDone marks the successful end of the current step.
	StepDone(title string)
	// StepFailed marks the current step as failed.
	StepFailed(title string, err error)
	// Warn reports a non-fatal problem.
	Warn(msg string)
}

// nopReporter discards all progress notifications.
type nopReporter struct{}

func (nopReporter) Info(string)              {}
func (nopReporter) StepStart(string)         {}
func (nopReporter) StepDone(string)          {}
func (nopReporter) StepFailed(string, error) {}
func (nopReporter) Warn(string)              {}
