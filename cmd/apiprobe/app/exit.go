package app

// exitError carries a process exit code through the cobra error path.
// main inspects errors for an ExitCode method to choose the code.
type exitError struct {
	code int
	msg  string
}

func (e exitError) Error() string { return e.msg }

// ExitCode returns the process exit code for this error.
func (e exitError) ExitCode() int { return e.code }
