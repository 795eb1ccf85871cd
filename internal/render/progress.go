package render

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner shows a spinner on stderr while work is in progress and
// returns the function that stops it. Nothing is shown when stderr is not
// a terminal.
func StartSpinner(msg string) (stop func()) {
	if !IsTerminal(os.Stderr) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}
