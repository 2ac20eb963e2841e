package listing

import "fmt"

const (
	OpReadDirectory = "read directory"
	OpWriteOutput   = "write output"
)

// IOError reports a failure to enumerate the directory or to write the
// output file. It wraps the underlying OS error.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
