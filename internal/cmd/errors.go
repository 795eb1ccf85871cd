package cmd

import "errors"

// ErrReported marks a failure whose details were already written to the
// output, so only the exit code remains to be returned
var ErrReported = errors.New("one or more targets were not removed cleanly")
