package scanner

import "fmt"

// SpawnError represents a failure to launch the scanner subprocess.
// This is a fatal setup error: the interpreter or script is missing or
// not executable, and nothing in the launcher retries it.
type SpawnError struct {
	// Interpreter is the interpreter binary that was invoked
	Interpreter string
	// Script is the scanner script path
	Script string
	// Underlying error from exec
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch scanner (%s %s): %v\n"+
		"Hint: run 'airstatus setup' to install the scanner environment,\n"+
		"or point --scanner at the scanner script.",
		e.Interpreter, e.Script, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
