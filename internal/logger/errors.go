package logger

import (
	"fmt"
	"os"
)

// WriteFailureHandler reports log events that could not be written.
func WriteFailureHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "zerolog: could not write event: %v\n", err)
}
